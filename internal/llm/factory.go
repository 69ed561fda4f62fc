package llm

import (
	"fmt"
	"strings"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	groqDefaultModel = "llama-3.3-70b-versatile"

	ollamaBaseURL = "http://localhost:11434/v1"
)

// NewProvider creates an adjudication provider based on configuration.
// An empty provider name disables adjudication and returns nil, nil.
func NewProvider(config model.LLMConfig) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider("openai", config)

	case "groq":
		if config.BaseURL == "" {
			config.BaseURL = groqBaseURL
		}
		if config.Model == "" {
			config.Model = groqDefaultModel
		}
		return NewOpenAIProvider("groq", config)

	case "ollama":
		if config.BaseURL == "" {
			config.BaseURL = ollamaBaseURL
		}
		if config.APIKey == "" {
			// Ollama ignores the key but the client requires one
			config.APIKey = "ollama"
		}
		return NewOpenAIProvider("ollama", config)

	case "":
		// No provider configured - adjudication disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, groq, ollama)", config.Provider)
	}
}
