package ai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Compile-time assurance the client satisfies the port
var _ Completer = (*OpenAIClient)(nil)

// OpenAIClient implements Completer using the Chat Completions API.
// The underlying client is created lazily so the app can start without a
// credential and be configured once the user has supplied one.
type OpenAIClient struct {
	mu      sync.Mutex
	client  *openai.Client
	model   string
	baseURL string
	timeout time.Duration
}

func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	c := &OpenAIClient{
		model:   model,
		baseURL: baseURL,
		timeout: 30 * time.Second,
	}
	if apiKey != "" {
		c.configure(apiKey)
	}
	return c
}

// Configure (re)builds the client with a fresh API key.
func (c *OpenAIClient) Configure(apiKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configure(apiKey)
}

func (c *OpenAIClient) configure(apiKey string) {
	clientConfig := openai.DefaultConfig(apiKey)
	if c.baseURL != "" {
		clientConfig.BaseURL = c.baseURL
	}
	c.client = openai.NewClientWithConfig(clientConfig)
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	c.mu.Lock()
	client := c.client
	c.mu.Unlock()
	if client == nil {
		return "", fmt.Errorf("openai client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toOpenAI(messages),
	}
	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func toOpenAI(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}
