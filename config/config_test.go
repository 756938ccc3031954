package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("LOVABLE_API_KEY", "gateway-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Plan.DatePolicy != DatePolicyConsecutive {
		t.Errorf("expected consecutive date policy, got %s", cfg.Plan.DatePolicy)
	}
	if cfg.Plan.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", cfg.Plan.Temperature)
	}
	if cfg.Plan.MaxFileChars != 50000 || cfg.Document.MaxChars != 100000 {
		t.Errorf("unexpected ceilings: %d / %d", cfg.Plan.MaxFileChars, cfg.Document.MaxChars)
	}
	if cfg.Document.MaxFileBytes != 10<<20 {
		t.Errorf("expected 10 MiB upload limit, got %d", cfg.Document.MaxFileBytes)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].Name != "gateway" || cfg.LLM.Providers[0].APIKey != "gateway-key" {
		t.Errorf("expected default gateway provider with env key, got %+v", cfg.LLM.Providers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard CORS, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("PLAN_DATE_POLICY", "SPACED")
	t.Setenv("PLAN_TIMEZONE", "America/Sao_Paulo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Plan.DatePolicy != DatePolicySpaced {
		t.Errorf("expected spaced, got %s", cfg.Plan.DatePolicy)
	}
	if cfg.Plan.Timezone != "America/Sao_Paulo" {
		t.Errorf("expected Sao Paulo timezone, got %s", cfg.Plan.Timezone)
	}
}

func TestLoad_InvalidDatePolicy(t *testing.T) {
	viper.Reset()
	t.Setenv("PLAN_DATE_POLICY", "random")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown date policy")
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"keyed provider", LLMConfig{Providers: []ProviderConfig{{Name: "gateway", Enabled: true, Priority: 1, APIKey: "k"}}}, false},
		{"missing key", LLMConfig{Providers: []ProviderConfig{{Name: "gateway", Enabled: true, Priority: 1}}}, true},
		{"disabled only", LLMConfig{Providers: []ProviderConfig{{Name: "gateway", Priority: 1, APIKey: "k"}}}, true},
		{"duplicate priority", LLMConfig{Providers: []ProviderConfig{
			{Name: "a", Enabled: true, Priority: 1, APIKey: "k"},
			{Name: "b", Enabled: true, Priority: 1, APIKey: "k"},
		}}, true},
		{"no providers", LLMConfig{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
