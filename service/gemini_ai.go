package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/tieubaoca/eduinsights-be/types"
)

// GeminiService is the Gemini-backed completion provider. It rotates
// through the configured API keys when a request fails.
type GeminiService struct {
	apiKeys     []string
	currentKey  int
	client      *genai.Client
	model       *genai.GenerativeModel
	modelName   string
	maxTokens   int32
	temperature float32
	mu          sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string, maxTokens int, temperature float32) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, &types.ConfigurationError{Setting: "GEMINI_API_KEYS"}
	}

	service := &GeminiService{
		apiKeys:     apiKeys,
		currentKey:  0,
		modelName:   modelName,
		maxTokens:   int32(maxTokens),
		temperature: temperature,
	}

	if err := service.initClient(); err != nil {
		return nil, err
	}

	service.configureModel()
	return service, nil
}

func (s *GeminiService) configureModel() {
	s.model = s.client.GenerativeModel(s.modelName)
	s.model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemMessageEducationalAssistant)},
	}
	s.model.MaxOutputTokens = &s.maxTokens
	s.model.Temperature = &s.temperature
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	if err := s.client.Close(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	if err := s.initClient(); err != nil {
		return err
	}
	s.configureModel()
	return nil
}

func (s *GeminiService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		// Try rotating API key if there's an error
		zap.S().Warnw("gemini request failed, rotating key", "error", err)
		if rerr := s.rotateAPIKey(); rerr != nil {
			return "", &types.CompletionError{Provider: "gemini", Err: rerr}
		}
		resp, err = s.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", &types.CompletionError{Provider: "gemini", Err: err}
		}
	}

	if len(resp.Candidates) == 0 {
		return "", &types.CompletionError{Provider: "gemini", Err: errors.New("no response generated")}
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}

	return content, nil
}

func (s *GeminiService) CompleteStream(ctx context.Context, prompt string, handler types.StreamHandler) error {
	iter := s.model.GenerateContentStream(ctx, genai.Text(prompt))

	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if rerr := s.rotateAPIKey(); rerr != nil {
				return &types.CompletionError{Provider: "gemini", Err: rerr}
			}
			iter = s.model.GenerateContentStream(ctx, genai.Text(prompt))
			resp, err = iter.Next()
			if err != nil {
				return &types.CompletionError{Provider: "gemini", Err: err}
			}
		}

		if len(resp.Candidates) == 0 {
			continue
		}

		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					handler(string(text))
				}
			}
		}
	}
	return nil
}
