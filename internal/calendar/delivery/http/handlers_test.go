package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-planning-studio/internal/calendar"
	"ai-planning-studio/pkg/log"
)

type fakeUseCase struct {
	out calendar.ExportOutput
	err error
	got calendar.ExportInput
}

func (f *fakeUseCase) Export(ctx context.Context, input calendar.ExportInput) (calendar.ExportOutput, error) {
	f.got = input
	return f.out, f.err
}

func serve(uc calendar.UseCase, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/export", New(log.NewNop(), uc).Export)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const oneTask = `{"calendarId":"team","tasks":[{"text":"📚 Intro","priority":"high","date":"2026-03-30","category":"Go"}]}`

func TestExport_OK(t *testing.T) {
	uc := &fakeUseCase{out: calendar.ExportOutput{
		Created: 1,
		Results: []calendar.ExportResult{{Index: 0, Text: "📚 Intro", Date: "2026-03-30", EventID: "e1", Link: "https://x"}},
	}}

	w := serve(uc, oneTask)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "team", uc.got.CalendarID)
	require.Len(t, uc.got.Tasks, 1)
	assert.Equal(t, "2026-03-30", uc.got.Tasks[0].Date)

	var body exportResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Created)
	assert.Equal(t, "e1", body.Results[0].EventID)
	assert.NotContains(t, w.Body.String(), `"error"`)
}

func TestExport_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"no tasks", `{"tasks":[]}`, nil, http.StatusBadRequest},
		{"malformed", `{"tasks":`, nil, http.StatusBadRequest},
		{"too many", oneTask, calendar.ErrTooManyTasks, http.StatusBadRequest},
		{"not configured", oneTask, calendar.ErrNotConfigured, http.StatusServiceUnavailable},
		{"unknown", oneTask, errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
