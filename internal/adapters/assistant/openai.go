// Package assistant implements the ChatProvider port on top of the OpenAI
// chat completion API.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/phishwise/phishwise/internal/domain"
)

// systemPrompt frames the assistant as an awareness coach. It is prepended
// server-side so clients cannot override the persona.
const systemPrompt = "You are a phishing-awareness coach. Explain how to " +
	"recognize phishing emails, malicious URLs, suspicious domains, IPs and " +
	"file attachments. Be concise and practical. Never ask the user for " +
	"credentials or personal data, and never provide instructions for " +
	"carrying out attacks."

// Client streams assistant replies via the OpenAI API
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("assistant: API key is required")
	}
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &Client{api: openai.NewClient(apiKey), model: model}, nil
}

// StreamReply posts the conversation and relays each streamed chunk to
// onChunk in arrival order.
func (c *Client) StreamReply(ctx context.Context, messages []domain.ChatMessage, onChunk func(text string) error) error {
	req := openai.ChatCompletionRequest{
		Model:  c.model,
		Stream: true,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		},
	}
	for _, m := range messages {
		role := m.Role
		if role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	stream, err := c.api.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return fmt.Errorf("assistant: create stream: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("assistant: stream recv: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if delta := resp.Choices[0].Delta.Content; delta != "" {
			if err := onChunk(delta); err != nil {
				return err
			}
		}
	}
}
