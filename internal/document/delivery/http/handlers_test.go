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
	"ai-planning-studio/internal/document"
	"ai-planning-studio/internal/middleware"
	"ai-planning-studio/pkg/extract"
	"ai-planning-studio/pkg/log"
)

type fakeUseCase struct {
	out document.ExtractedText
	err error
	got document.ParseInput
}

func (f *fakeUseCase) Parse(ctx context.Context, input document.ParseInput) (document.ExtractedText, error) {
	f.got = input
	return f.out, f.err
}

func (f *fakeUseCase) Extract(ctx context.Context, doc document.UploadedDocument) (document.ExtractedText, error) {
	return f.out, f.err
}

func serve(uc document.UseCase, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	r.POST("/parse-document", h.Parse)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/parse-document", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestParse_OK(t *testing.T) {
	uc := &fakeUseCase{out: document.ExtractedText{Content: "hello", Format: extract.FormatPDF}}
	w := serve(uc, `{"file":"aGVsbG8=","fileName":"a.pdf","fileType":"application/pdf"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, document.ParseInput{File: "aGVsbG8=", FileName: "a.pdf", FileType: "application/pdf"}, uc.got)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "hello", body["content"])
	assert.Equal(t, false, body["truncated"])
	assert.Equal(t, "pdf", body["format"])
	assert.NotContains(t, body, "warning")
}

func TestParse_WarningIsStill200(t *testing.T) {
	uc := &fakeUseCase{out: document.ExtractedText{Content: extract.MsgPDFUnreadable, Warning: extract.MsgPDFUnreadable, Format: extract.FormatPDF}}
	w := serve(uc, `{"file":"AAEC","fileName":"scan.pdf","fileType":"application/pdf"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, extract.MsgPDFUnreadable, body["content"])
	assert.Equal(t, extract.MsgPDFUnreadable, body["warning"])
}

func TestParse_Errors(t *testing.T) {
	valid := `{"file":"AAEC","fileName":"a.bin","fileType":"application/octet-stream"}`
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"missing file", `{"fileName":"a.pdf"}`, nil, http.StatusBadRequest},
		{"missing name", `{"file":"AAEC"}`, nil, http.StatusBadRequest},
		{"malformed json", `not json`, nil, http.StatusBadRequest},
		{"unsupported", valid, fmt.Errorf("%w: a.bin", document.ErrUnsupportedFormat), http.StatusBadRequest},
		{"bad base64", valid, document.ErrInvalidEncoding, http.StatusBadRequest},
		{"too large", valid, document.ErrFileTooLarge, http.StatusBadRequest},
		{"unknown", valid, fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.NotContains(t, body, "content")
		})
	}
}

func TestParse_BodyOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{Document: config.DocumentConfig{MaxFileBytes: 3}}
	uc := &fakeUseCase{out: document.ExtractedText{Content: "ok", Format: extract.FormatText}}
	RegisterLegacyRoutes(r, New(log.NewNop(), uc), middleware.New(log.NewNop(), cfg, nil))

	send := func(file string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/parse-document",
			strings.NewReader(`{"file":"`+file+`","fileName":"a.txt","fileType":"text/plain"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("aGk=").Code)

	w := send(strings.Repeat("A", int(middleware.MaxBodyBytes(3))))
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "file too large", body["error"])
}
