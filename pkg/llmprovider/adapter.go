package llmprovider

import (
	"context"

	"ai-planning-studio/pkg/chatcompletion"
	"ai-planning-studio/pkg/gemini"
)

// ChatCompletionAdapter adapts pkg/chatcompletion to llmprovider.Provider interface
type ChatCompletionAdapter struct {
	name   string
	client chatcompletion.IChatCompletion
}

// NewChatCompletionAdapter creates a new adapter reporting itself as name
func NewChatCompletionAdapter(name string, client chatcompletion.IChatCompletion) *ChatCompletionAdapter {
	return &ChatCompletionAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *ChatCompletionAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ccReq := &chatcompletion.Request{
		Messages:    make([]chatcompletion.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != "" {
		ccReq.Messages = append(ccReq.Messages, chatcompletion.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, msg := range req.Messages {
		ccReq.Messages = append(ccReq.Messages, chatcompletion.Message{Role: msg.Role, Content: msg.Text})
	}

	resp, err := a.client.Complete(ctx, ccReq)
	if err != nil {
		return nil, Classify(a.name, err)
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *ChatCompletionAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *ChatCompletionAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          make([]gemini.Content, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = gemini.Content{Role: msg.Role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, Classify("gemini", err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
