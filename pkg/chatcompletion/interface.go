package chatcompletion

import "context"

// IChatCompletion is a client for OpenAI-compatible /chat/completions
// endpoints. Implementations are safe for concurrent use.
type IChatCompletion interface {
	// Complete sends one non-streaming chat-completion request.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string

	// Preset returns the vendor preset the client was built with
	Preset() Preset
}

// New creates a new chat-completion client with the given configuration
func New(cfg Config) (IChatCompletion, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &impl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		preset:     cfg.Preset,
		httpClient: cfg.HTTPClient,
	}, nil
}
