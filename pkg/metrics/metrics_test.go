package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-planning-studio/pkg/metrics"
)

func TestMetrics_Exposition(t *testing.T) {
	m := metrics.New()
	m.ObserveHTTP("POST", "/generate-plan", 200, 1.2)
	m.ObserveExtraction("pdf", "warning", 120)
	m.ObserveLLMCall("gateway", "success", 3.4)
	m.ObserveLLMCall("gateway", "rate_limited", 0.2)
	m.ObservePlan("success", 12)
	m.ObservePlan("invalid_response", 0)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	for _, want := range []string{
		`planning_studio_http_requests_total{method="POST",route="/generate-plan",status="200"} 1`,
		`planning_studio_document_extractions_total{format="pdf",outcome="warning"} 1`,
		`planning_studio_llm_calls_total{outcome="rate_limited",provider="gateway"} 1`,
		`planning_studio_plan_generations_total{outcome="invalid_response"} 1`,
		`planning_studio_plan_tasks_count 1`,
	} {
		assert.True(t, strings.Contains(text, want), "missing %q", want)
	}
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.ObservePlan("success", 3)

	na, err := testutil.GatherAndCount(a.Registry(), "planning_studio_plan_generations_total")
	require.NoError(t, err)
	nb, err := testutil.GatherAndCount(b.Registry(), "planning_studio_plan_generations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, na)
	assert.Equal(t, 0, nb)
}
