// Package openai adapts an OpenAI-compatible chat completion endpoint to the
// caption model port.
package openai

import (
	"context"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// ErrNoChoices is returned when the endpoint answers with an empty choice
// list, which the contract treats as a malformed response.
var ErrNoChoices = errors.New("completion returned no choices")

type Adapter struct {
	client *openai.Client
	model  string
}

// New builds the adapter. The client is constructed once and reused for the
// process lifetime; calls are stateless request/response afterwards. An
// empty baseURL keeps the official endpoint, an empty model picks a small
// default.
func New(apiKey, baseURL, model string) *Adapter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Adapter{client: openai.NewClientWithConfig(cfg), model: model}
}

// Generate requests exactly one continuation of prompt, capped at maxTokens.
func (a *Adapter) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		N:         1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
