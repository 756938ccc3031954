package httpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-planning-studio/config"
	documentUC "ai-planning-studio/internal/document/usecase"
	"ai-planning-studio/internal/middleware"
	planUC "ai-planning-studio/internal/plan/usecase"
	"ai-planning-studio/pkg/datemath"
	"ai-planning-studio/pkg/extract"
	"ai-planning-studio/pkg/llmprovider"
	"ai-planning-studio/pkg/log"
	"ai-planning-studio/pkg/metrics"
)

// gateway fakes the chat-completion endpoint with a fixed status and content.
func gateway(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		body, _ := json.Marshal(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": content}}},
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newTestServer(t *testing.T, gatewayURL string) (*HTTPServer, *datemath.Calendar) {
	t.Helper()
	l := log.NewNop()
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
		Plan: config.PlanConfig{Timezone: "UTC", Temperature: 0.7, DatePolicy: config.DatePolicyConsecutive, MaxFileChars: 50000, ExampleDays: 7},
	}
	m := metrics.New()

	providers, err := llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gateway", Enabled: true, Priority: 1, APIKey: "k", BaseURL: gatewayURL, Timeout: "5s"}},
	}, l)
	require.NoError(t, err)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{RetryAttempts: 1, MaxTotalTimeout: 5 * time.Second}, l)
	manager.SetObserver(m)

	cal, err := datemath.New("UTC")
	require.NoError(t, err)

	docs := documentUC.New(l, 100000, 10<<20)
	docs.SetObserver(m)
	plans := planUC.New(l, manager, cal, cfg.Plan)
	plans.SetObserver(m)

	srv, err := New(l, Config{
		Logger:          l,
		Port:            8080,
		Mode:            "test",
		Environment:     "development",
		Metrics:         m,
		Middleware:      middleware.New(l, cfg, m),
		DocumentUseCase: docs,
		PlanUseCase:     plans,
	})
	require.NoError(t, err)
	return srv, cal
}

func do(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://app.example.com")
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Logger: log.NewNop(), Port: 8080, Mode: "test"})
	assert.Error(t, err)
}

func TestGeneratePlan_EndToEnd(t *testing.T) {
	reply := "```json\n" + `{
		"analysis": {"estimated_difficulty": 3, "total_hours": 10, "recommended_days": 5, "modules": ["Syntax", "Functions"]},
		"tasks": [
			{"text": "📚 Syntax basics", "priority": "high", "date": "2020-01-01", "category": "Python"},
			{"text": "✍️ Functions", "priority": "alta", "category": "Python"},
			{"text": "📝 Review", "priority": "unknown", "date": "2020-01-03", "category": "Python"}
		]
	}` + "\n```"
	srv, cal := newTestServer(t, gateway(t, http.StatusOK, reply).URL)

	for _, path := range []string{"/generate-plan", "/api/v1/plans/generate"} {
		t.Run(path, func(t *testing.T) {
			w := do(srv, http.MethodPost, path, `{"subject":"Python","topic":"Basics"}`)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

			var body struct {
				Tasks []struct {
					Text     string `json:"text"`
					Priority string `json:"priority"`
					Date     string `json:"date"`
				} `json:"tasks"`
				Analysis struct {
					EstimatedDifficulty int      `json:"estimatedDifficulty"`
					Modules             []string `json:"modules"`
				} `json:"analysis"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Len(t, body.Tasks, 3)

			today := cal.Today(time.Now())
			for i, task := range body.Tasks {
				assert.Equal(t, cal.DayString(today, i), task.Date)
			}
			assert.Equal(t, "high", body.Tasks[1].Priority)
			assert.Equal(t, "medium", body.Tasks[2].Priority)
			assert.Equal(t, 3, body.Analysis.EstimatedDifficulty)
			assert.Equal(t, []string{"Syntax", "Functions"}, body.Analysis.Modules)
		})
	}
}

func TestGeneratePlan_UpstreamRateLimited(t *testing.T) {
	srv, _ := newTestServer(t, gateway(t, http.StatusTooManyRequests, "").URL)

	w := do(srv, http.MethodPost, "/generate-plan", `{"subject":"Python"}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "tasks")
	assert.NotEmpty(t, body["error"])
}

func TestGeneratePlan_MissingSubject(t *testing.T) {
	srv, _ := newTestServer(t, gateway(t, http.StatusOK, "[]").URL)
	w := do(srv, http.MethodPost, "/generate-plan", `{"subject":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseDocument_EndToEnd(t *testing.T) {
	srv, _ := newTestServer(t, gateway(t, http.StatusOK, "[]").URL)

	t.Run("pdf without text markers", func(t *testing.T) {
		file := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4\n1 0 obj << /Type /Catalog >> endobj\n%%EOF"))
		w := do(srv, http.MethodPost, "/parse-document", `{"file":"`+file+`","fileName":"scan.pdf","fileType":"application/pdf"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, extract.MsgPDFUnreadable, body["content"])
		assert.Equal(t, body["content"], body["warning"])
		assert.Equal(t, false, body["truncated"])
	})

	t.Run("plain text", func(t *testing.T) {
		file := base64.StdEncoding.EncodeToString([]byte("Chapter 1\nVectors"))
		w := do(srv, http.MethodPost, "/api/v1/documents/parse", `{"file":"`+file+`","fileName":"notes.txt","fileType":"text/plain"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "Vectors")
	})

	t.Run("missing file", func(t *testing.T) {
		w := do(srv, http.MethodPost, "/parse-document", `{"fileName":"a.pdf"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t, gateway(t, http.StatusOK, "[]").URL)

	w := do(srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ServiceName)

	// one request so the HTTP histogram has a sample
	w = do(srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = do(srv, http.MethodGet, "/metrics", "")
	assert.Contains(t, w.Body.String(), "go_goroutines")

	w = do(srv, http.MethodOptions, "/generate-plan", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	// export route only exists when calendar is configured
	w = do(srv, http.MethodPost, "/api/v1/calendar/export", `{"tasks":[]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
