package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface.
// errs are returned in order; once exhausted the call succeeds.
type mockProvider struct {
	name      string
	model     string
	errs      []error
	delay     time.Duration
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.callCount <= len(m.errs) {
		return nil, m.errs[m.callCount-1]
	}
	return &Response{
		Text:         "Hello from " + m.name,
		ProviderName: m.name,
		ModelName:    m.model,
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// statusError mimics a client error carrying an HTTP status
type statusError int

func (s statusError) Error() string   { return fmt.Sprintf("status %d", int(s)) }
func (s statusError) HTTPStatus() int { return int(s) }

func failing(n int, err error) []error {
	errs := make([]error, n)
	for i := range errs {
		errs[i] = err
	}
	return errs
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type recordingObserver struct {
	outcomes []string
}

func (r *recordingObserver) ObserveLLMCall(provider, outcome string, seconds float64) {
	r.outcomes = append(r.outcomes, provider+":"+outcome)
}

func testRequest() *Request {
	return &Request{
		SystemInstruction: "system",
		Messages:          []Message{{Role: "user", Text: "Hello"}},
		Temperature:       0.7,
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model"}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_RetryRecoversTransientFailure(t *testing.T) {
	primary := &mockProvider{name: "primary", errs: []error{errors.New("connection reset")}}
	manager := NewManager([]Provider{primary}, &Config{
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "Hello from primary" {
		t.Errorf("unexpected text %q", resp.Text)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected 2 calls, got %d", primary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", errs: failing(3, statusError(503))}
	secondary := &mockProvider{name: "secondary"}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected secondary, got %s", resp.ProviderName)
	}
	if primary.callCount != 3 {
		t.Errorf("Expected primary to be retried 3 times, got %d", primary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", errs: failing(2, statusError(500))}
	secondary := &mockProvider{name: "secondary", errs: failing(2, statusError(401))}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), testRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got %v", err)
	}
	if !errors.Is(err, ErrProviderRejected) {
		t.Errorf("Expected last error kind to be rejected, got %v", err)
	}
	if secondary.callCount != 1 {
		t.Errorf("Rejected requests must not be retried, got %d calls", secondary.callCount)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", errs: failing(1, statusError(502))}
	secondary := &mockProvider{name: "secondary"}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), testRequest())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("Expected unavailable, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("Secondary must not be called when fallback is disabled")
	}
}

func TestGenerateContent_RateLimitAndQuotaSurfaceImmediately(t *testing.T) {
	tests := []struct {
		name   string
		status statusError
		want   error
	}{
		{"rate limited", statusError(429), ErrProviderRateLimited},
		{"quota exceeded", statusError(402), ErrProviderQuotaExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockProvider{name: "primary", errs: failing(3, tt.status)}
			secondary := &mockProvider{name: "secondary"}
			manager := NewManager([]Provider{primary, secondary}, &Config{
				FallbackEnabled: true,
				RetryAttempts:   3,
				RetryDelay:      time.Millisecond,
			}, &mockLogger{})

			_, err := manager.GenerateContent(context.Background(), testRequest())
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if errors.Is(err, ErrAllProvidersFailed) {
				t.Errorf("Did not expect ErrAllProvidersFailed wrapping")
			}
			if primary.callCount != 1 {
				t.Errorf("Expected no retry, got %d calls", primary.callCount)
			}
			if secondary.callCount != 0 {
				t.Errorf("Expected no fallback")
			}
		})
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: time.Second}
	manager := NewManager([]Provider{slow}, &Config{
		RetryAttempts:   1,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), testRequest())
	if !errors.Is(err, ErrProviderTimeout) {
		t.Fatalf("Expected timeout, got %v", err)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})
	if _, err := manager.GenerateContent(context.Background(), testRequest()); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("Expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_Observer(t *testing.T) {
	primary := &mockProvider{name: "primary", errs: []error{statusError(500)}}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 2, RetryDelay: time.Millisecond}, &mockLogger{})
	obs := &recordingObserver{}
	manager.SetObserver(obs)

	if _, err := manager.GenerateContent(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"primary:unavailable", "primary:success"}
	if fmt.Sprint(obs.outcomes) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, obs.outcomes)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{statusError(429), "rate_limited"},
		{statusError(402), "quota_exceeded"},
		{statusError(500), "unavailable"},
		{statusError(408), "unavailable"},
		{statusError(400), "rejected"},
		{context.DeadlineExceeded, "timeout"},
		{errors.New("dial tcp: connection refused"), "unavailable"},
	}
	for _, tt := range tests {
		got := Classify("p", tt.err)
		if Outcome(got) != tt.want {
			t.Errorf("Classify(%v) outcome = %s, want %s", tt.err, Outcome(got), tt.want)
		}
		var pe *ProviderError
		if !errors.As(got, &pe) || pe.Provider != "p" || !errors.Is(got, tt.err) {
			t.Errorf("Classify(%v) lost the original error: %v", tt.err, got)
		}
	}
	if Classify("p", nil) != nil {
		t.Error("Classify(nil) must be nil")
	}
}
