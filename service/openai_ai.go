package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/tieubaoca/eduinsights-be/types"
)

type OpenAIService struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

func NewOpenAIService(baseURL, apiKey, model string, maxTokens int, temperature float32) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL // Point this at a local LLM server if needed
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (s *OpenAIService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: SystemMessageEducationalAssistant,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   s.maxTokens,
			Temperature: s.temperature,
		},
	)
	if err != nil {
		return "", &types.CompletionError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &types.CompletionError{Provider: "openai", Err: errors.New("no response generated")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *OpenAIService) CompleteStream(ctx context.Context, prompt string, handler types.StreamHandler) error {
	stream, err := s.client.CreateChatCompletionStream(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: SystemMessageEducationalAssistant,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   s.maxTokens,
			Temperature: s.temperature,
		},
	)
	if err != nil {
		return &types.CompletionError{Provider: "openai", Err: err}
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			zap.S().Warnw("stream receive failed", "error", err)
			return &types.CompletionError{Provider: "openai", Err: err}
		}
		if len(resp.Choices) == 0 {
			continue
		}
		handler(resp.Choices[0].Delta.Content)
	}
}
