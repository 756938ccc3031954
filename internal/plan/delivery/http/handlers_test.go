package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-planning-studio/config"
	"ai-planning-studio/internal/middleware"
	"ai-planning-studio/internal/model"
	"ai-planning-studio/internal/plan"
	"ai-planning-studio/pkg/log"
)

type fakeUseCase struct {
	out plan.GenerateOutput
	err error
	got plan.GenerateInput
}

func (f *fakeUseCase) Generate(ctx context.Context, input plan.GenerateInput) (plan.GenerateOutput, error) {
	f.got = input
	return f.out, f.err
}

func serve(uc plan.UseCase, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	r.POST("/generate-plan", h.Generate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGenerate_OK(t *testing.T) {
	uc := &fakeUseCase{out: plan.GenerateOutput{
		Tasks: []model.GeneratedTask{
			{Text: "📚 Intro", Priority: model.PriorityHigh, Date: "2026-03-30", Category: "Go", Subject: "General"},
		},
		Analysis: &model.PlanAnalysis{EstimatedDifficulty: 2, TotalHours: 4, RecommendedDays: 3, Modules: []string{"Basics"}},
	}}

	w := serve(uc, `{"subject":"Go","topic":"Generics","prompt":"fast","fileContent":"notes"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, plan.GenerateInput{Subject: "Go", Topic: "Generics", Prompt: "fast", FileContent: "notes"}, uc.got)

	var body struct {
		Tasks    []model.GeneratedTask `json:"tasks"`
		Analysis *model.PlanAnalysis   `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, uc.out.Tasks, body.Tasks)
	assert.Equal(t, uc.out.Analysis, body.Analysis)
}

func TestGenerate_NoAnalysisOmitted(t *testing.T) {
	uc := &fakeUseCase{out: plan.GenerateOutput{Tasks: []model.GeneratedTask{{Text: "a", Priority: model.PriorityLow, Date: "2026-03-30", Category: "Go"}}}}
	w := serve(uc, `{"subject":"Go"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "analysis")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		msg    string
	}{
		{"missing subject", `{"prompt":"x"}`, nil, http.StatusBadRequest, msgSubjectRequired},
		{"malformed json", `{"subject":`, nil, http.StatusBadRequest, ""},
		{"binary", `{"subject":"Go"}`, plan.ErrBinaryContent, http.StatusBadRequest, msgBinaryContent},
		{"rate limited", `{"subject":"Go"}`, fmt.Errorf("%w: upstream", plan.ErrRateLimited), http.StatusTooManyRequests, msgRateLimited},
		{"quota", `{"subject":"Go"}`, plan.ErrQuotaExceeded, http.StatusPaymentRequired, msgQuotaExceeded},
		{"unavailable", `{"subject":"Go"}`, plan.ErrUpstreamUnavailable, http.StatusInternalServerError, msgUnavailable},
		{"invalid reply", `{"subject":"Go"}`, plan.ErrInvalidAIResponse, http.StatusInternalServerError, msgInvalidResponse},
		{"unknown", `{"subject":"Go"}`, fmt.Errorf("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotContains(t, body, "tasks")
			if tt.msg != "" {
				assert.Equal(t, tt.msg, body["error"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestGenerate_BodyOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{Document: config.DocumentConfig{MaxFileBytes: 3}}
	uc := &fakeUseCase{}
	RegisterLegacyRoutes(r, New(log.NewNop(), uc), middleware.New(log.NewNop(), cfg, nil))

	body := `{"subject":"Go","fileContent":"` + strings.Repeat("x", int(middleware.MaxBodyBytes(3))) + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgTooLarge, resp["error"])
	assert.Empty(t, uc.got.Subject)
}
