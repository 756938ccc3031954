package chatcompletion

import "time"

const (
	// DefaultBaseURL is the AI gateway endpoint used when no preset or base URL is given.
	DefaultBaseURL = "https://ai.gateway.lovable.dev/v1"

	// DefaultModel is the default gateway model.
	DefaultModel = "google/gemini-3-flash-preview"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second

	// errorBodyLimit caps how much of an upstream error body is kept.
	errorBodyLimit = 2048
)

// Preset names a known OpenAI-compatible vendor.
type Preset string

const (
	PresetGateway  Preset = "gateway"
	PresetOpenAI   Preset = "openai"
	PresetDeepSeek Preset = "deepseek"
	PresetQwen     Preset = "qwen"
)

type presetDefaults struct {
	baseURL string
	model   string
}

var presets = map[Preset]presetDefaults{
	PresetGateway:  {baseURL: DefaultBaseURL, model: DefaultModel},
	PresetOpenAI:   {baseURL: "https://api.openai.com/v1", model: "gpt-4o-mini"},
	PresetDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
	PresetQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
}

// IsPreset reports whether name is a known preset.
func IsPreset(name string) bool {
	_, ok := presets[Preset(name)]
	return ok
}
