package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tieubaoca/eduinsights-be/types"
)

// ErrTeachingNotesRole is returned when teaching notes are requested
// for a role other than teacher.
var ErrTeachingNotesRole = errors.New("teaching notes are available for the teacher role")

// ErrEmptyQuestion is returned when a qa task carries no question text.
var ErrEmptyQuestion = errors.New("question must not be empty")

// AnalysisService runs one analysis task per call: it takes the
// task-specific prefix of the document text, builds the prompt, and
// performs a single blocking completion. Every task reads only the
// leading excerpt of the document, matching the per-task budgets.
type AnalysisService struct {
	ai AIService
}

func NewAnalysisService(ai AIService) *AnalysisService {
	return &AnalysisService{
		ai: ai,
	}
}

// Analyze executes a task request and returns the generated text, or
// an error with no partial result.
func (s *AnalysisService) Analyze(ctx context.Context, req types.TaskRequest) (*types.TaskResult, error) {
	if !types.ValidTaskKind(req.Kind) {
		return nil, fmt.Errorf("unknown task kind: %s", req.Kind)
	}
	if req.Role == "" {
		req.Role = types.RoleStudent
	}
	if !types.ValidUserRole(req.Role) {
		return nil, fmt.Errorf("unknown user role: %s", req.Role)
	}
	if req.Kind == types.TaskTeachingNotes && req.Role != types.RoleTeacher {
		return nil, ErrTeachingNotesRole
	}
	if req.Kind == types.TaskQA && req.Question == "" {
		return nil, ErrEmptyQuestion
	}

	prompt, err := s.buildPrompt(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	text, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		zap.S().Errorw("analysis task failed", "task", req.Kind, "error", err)
		return nil, err
	}
	zap.S().Infow("analysis task completed",
		"task", req.Kind,
		"role", req.Role,
		"prompt_chars", len(prompt),
		"duration", time.Since(start),
	)

	return &types.TaskResult{Kind: req.Kind, Text: text}, nil
}

// AnswerQuestionStream answers a qa task, delivering the response
// incrementally through handler. Used by the websocket endpoint.
func (s *AnalysisService) AnswerQuestionStream(ctx context.Context, question, text string, handler types.StreamHandler) error {
	if question == "" {
		return ErrEmptyQuestion
	}
	req := types.TaskRequest{
		Kind:     types.TaskQA,
		Role:     types.RoleStudent,
		Text:     text,
		Question: question,
	}
	prompt, err := s.buildPrompt(req)
	if err != nil {
		return err
	}
	return s.ai.CompleteStream(ctx, prompt, handler)
}

func (s *AnalysisService) buildPrompt(req types.TaskRequest) (string, error) {
	excerpt := TruncateExcerpt(req.Text, ExcerptLimit(req.Kind))
	return BuildPrompt(req, excerpt)
}

// GenerateSummary creates a role-tailored structured summary.
func (s *AnalysisService) GenerateSummary(ctx context.Context, text string, role types.UserRole) (*types.TaskResult, error) {
	return s.Analyze(ctx, types.TaskRequest{Kind: types.TaskSummary, Role: role, Text: text})
}

// ExtractKeyPoints extracts 8-12 organized key points.
func (s *AnalysisService) ExtractKeyPoints(ctx context.Context, text string) (*types.TaskResult, error) {
	return s.Analyze(ctx, types.TaskRequest{Kind: types.TaskKeyPoints, Text: text})
}

// GenerateStudyQuestions creates 10 assessment questions.
func (s *AnalysisService) GenerateStudyQuestions(ctx context.Context, text string) (*types.TaskResult, error) {
	return s.Analyze(ctx, types.TaskRequest{Kind: types.TaskStudyQuestions, Text: text})
}

// AnswerQuestion answers a free-form question against the document.
func (s *AnalysisService) AnswerQuestion(ctx context.Context, question, text string) (*types.TaskResult, error) {
	return s.Analyze(ctx, types.TaskRequest{Kind: types.TaskQA, Text: text, Question: question})
}

// CreateTeachingNotes generates classroom material for the teacher role.
func (s *AnalysisService) CreateTeachingNotes(ctx context.Context, text string) (*types.TaskResult, error) {
	return s.Analyze(ctx, types.TaskRequest{Kind: types.TaskTeachingNotes, Role: types.RoleTeacher, Text: text})
}
