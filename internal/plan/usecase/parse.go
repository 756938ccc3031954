package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"ai-planning-studio/internal/plan"
)

// codeFence matches markdown fence delimiters wherever they appear.
var codeFence = regexp.MustCompile("```(?i:json)?[ \t]*\r?\n?")

// rawPlan is the model reply after shape validation, before repair.
type rawPlan struct {
	tasks    []map[string]any
	analysis map[string]any // nil when absent
}

// stripFences removes markdown code fences and surrounding whitespace.
func stripFences(reply string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(strings.TrimSpace(reply), ""))
}

// decodeReply parses the model reply. Accepted shapes are a bare task array or
// an object with a "tasks" array and optional analysis fields, either nested
// under "analysis" or at the top level.
func decodeReply(reply string) (rawPlan, error) {
	text := stripFences(reply)
	if text == "" {
		return rawPlan{}, fmt.Errorf("%w: empty reply", plan.ErrInvalidAIResponse)
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return rawPlan{}, fmt.Errorf("%w: %v", plan.ErrInvalidAIResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return rawPlan{}, fmt.Errorf("%w: unexpected data after JSON value", plan.ErrInvalidAIResponse)
	}

	var out rawPlan
	var items []any
	switch v := payload.(type) {
	case []any:
		items = v
	case map[string]any:
		tasks, ok := v["tasks"].([]any)
		if !ok {
			return rawPlan{}, fmt.Errorf("%w: reply has no tasks array", plan.ErrInvalidAIResponse)
		}
		items = tasks
		if nested, ok := v["analysis"].(map[string]any); ok {
			out.analysis = nested
		} else {
			out.analysis = v
		}
	default:
		return rawPlan{}, fmt.Errorf("%w: reply is neither an object nor an array", plan.ErrInvalidAIResponse)
	}

	out.tasks = make([]map[string]any, 0, len(items))
	for _, item := range items {
		out.tasks = append(out.tasks, taskObject(item))
	}
	return out, nil
}

// taskObject turns one tasks entry into a field map. A bare string becomes
// the task text; any other non-object yields an empty map so repair fills
// in every default.
func taskObject(item any) map[string]any {
	switch v := item.(type) {
	case map[string]any:
		return v
	case string:
		return map[string]any{"text": v}
	default:
		return map[string]any{}
	}
}

// stringField returns the first non-empty string value among keys.
func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// numberField returns the first numeric value among keys. Numeric strings count.
func numberField(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		switch v := m[k].(type) {
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return f, true
			}
		case float64:
			return v, true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// excerpt returns at most n characters of s.
func excerpt(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
