package config

import "os"

// AIConfig holds settings for the generative-AI completion service.
// An empty APIKey disables the AI endpoints rather than failing startup.
type AIConfig struct {
	APIKey string
	Model  string
}

// LoadAIConfig loads AI configuration from environment variables
func LoadAIConfig() *AIConfig {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &AIConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  model,
	}
}
