package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_Valid(t *testing.T) {
	for _, p := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		assert.True(t, p.Valid(), p)
	}
	for _, p := range []Priority{"", "HIGH", "urgent", "alta"} {
		assert.False(t, p.Valid(), p)
	}
}

func TestGeneratedTasks_WireRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		tasks []GeneratedTask
	}{
		{"empty", []GeneratedTask{}},
		{"optional fields omitted", []GeneratedTask{
			{Text: "a", Priority: PriorityLow, Date: "2026-01-01", Category: "Go"},
		}},
		{"all fields", []GeneratedTask{
			{Text: "📚 Intro", Description: "Read chapter 1 (1h)", Priority: PriorityHigh, Date: "2026-03-30", Category: "Python", Subject: "Basics"},
			{Text: "✍️ Practice \"loops\"", Priority: PriorityMedium, Date: "2026-03-31", Category: "Python", Subject: "Control flow"},
		}},
		{"description without subject", []GeneratedTask{
			{Text: "🧪 Lab", Description: "Titration", Priority: PriorityLow, Date: "2026-12-31", Category: "Chemistry"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.tasks)
			require.NoError(t, err)

			var got []GeneratedTask
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.tasks, got)
		})
	}
}

func TestGeneratedTask_OmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(GeneratedTask{Text: "a", Priority: PriorityLow, Date: "2026-01-01", Category: "Go"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"a","priority":"low","date":"2026-01-01","category":"Go"}`, string(data))
}
