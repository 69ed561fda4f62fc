package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// OpenAIProvider implements the Provider interface for OpenAI-compatible
// chat completion APIs. Groq and Ollama expose the same wire protocol, so
// they reuse this provider with a different BaseURL and model.
type OpenAIProvider struct {
	client *openai.Client
	name   string
	config model.LLMConfig
}

// NewOpenAIProvider creates a provider against the OpenAI API or any
// OpenAI-compatible endpoint.
func NewOpenAIProvider(name string, config model.LLMConfig) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", name)
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		name:   name,
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Adjudicate submits the evidence bundle and decodes the oracle's
// strict-JSON response.
func (p *OpenAIProvider) Adjudicate(ctx context.Context, req Request) (*Adjudication, error) {
	chatModel := p.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}

	chatReq := openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(req),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3, // Lower temperature for more focused, factual output
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", p.name)
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	return ParseAdjudication([]byte(raw))
}
