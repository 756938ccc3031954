package chatcompletion

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds chat-completion client configuration. BaseURL and Model fall
// back to the preset defaults, then to the gateway defaults.
type Config struct {
	Preset     Preset
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("chatcompletion: APIKey is required")
	}
	if c.Preset == "" {
		c.Preset = PresetGateway
	}
	defaults, ok := presets[c.Preset]
	if !ok {
		return fmt.Errorf("chatcompletion: unknown preset %q", c.Preset)
	}
	if c.Model == "" {
		c.Model = defaults.model
	}
	if c.BaseURL == "" {
		c.BaseURL = defaults.baseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a chat-completion request. Model overrides the client model when set.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Response is the subset of the chat-completion response the service reads.
type Response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is one generated alternative.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage reports token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Text returns the content of the first choice, or "" when there is none.
func (r *Response) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type impl struct {
	apiKey     string
	baseURL    string
	model      string
	preset     Preset
	httpClient *http.Client
}
