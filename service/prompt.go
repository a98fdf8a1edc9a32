package service

import (
	"fmt"

	"github.com/tieubaoca/eduinsights-be/types"
)

// SystemMessageEducationalAssistant frames every completion request.
const SystemMessageEducationalAssistant = "You are an educational AI assistant specializing in document analysis and creating study materials for students and teachers."

// Per-task excerpt budgets, in characters. Every task reads a prefix of
// the document text up to its budget.
const (
	MaxAnalysisExcerpt = 4000
	MaxContextExcerpt  = 3500
)

// templateFunc renders the instruction string for one task kind from a
// length-bounded excerpt and the task parameters.
type templateFunc func(req types.TaskRequest, excerpt string) string

var promptTemplates = map[types.TaskKind]templateFunc{
	types.TaskSummary:        summaryPrompt,
	types.TaskKeyPoints:      keyPointsPrompt,
	types.TaskStudyQuestions: studyQuestionsPrompt,
	types.TaskQA:             qaPrompt,
	types.TaskTeachingNotes:  teachingNotesPrompt,
}

// BuildPrompt composes the final instruction string for a task. The
// excerpt must already be truncated to the task's budget; BuildPrompt
// embeds it verbatim.
func BuildPrompt(req types.TaskRequest, excerpt string) (string, error) {
	tmpl, ok := promptTemplates[req.Kind]
	if !ok {
		return "", fmt.Errorf("unknown task kind: %s", req.Kind)
	}
	return tmpl(req, excerpt), nil
}

// ExcerptLimit returns the character budget of the excerpt for a task.
func ExcerptLimit(kind types.TaskKind) int {
	if kind == types.TaskQA {
		return MaxContextExcerpt
	}
	return MaxAnalysisExcerpt
}

// TruncateExcerpt returns the first limit bytes of text, backing off to
// the previous rune boundary so multi-byte characters are never split.
func TruncateExcerpt(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && text[cut]&0xC0 == 0x80 {
		cut--
	}
	return text[:cut]
}

func summaryPrompt(req types.TaskRequest, excerpt string) string {
	role := req.Role
	if role == "" {
		role = types.RoleStudent
	}
	return fmt.Sprintf(`As an educational AI assistant, create a comprehensive summary of the following text for %s.

Please provide:
1. Main Topic Overview
2. Key Concepts and Ideas
3. Important Details
4. Educational Value

Text to summarize:
%s

Make the summary detailed but accessible for educational purposes.`, role, excerpt)
}

func keyPointsPrompt(_ types.TaskRequest, excerpt string) string {
	return fmt.Sprintf(`Extract the most important key points from this educational content. Format as a clear, organized list:

Text:
%s

Provide 8-12 key points that capture the essential information for study purposes.
Format each point clearly and concisely.`, excerpt)
}

func studyQuestionsPrompt(_ types.TaskRequest, excerpt string) string {
	return fmt.Sprintf(`Create 10 educational study questions based on this content. Include:
- 4 factual/recall questions
- 3 analytical/understanding questions
- 3 application/critical thinking questions

Text:
%s

Format as numbered questions suitable for student assessment.`, excerpt)
}

func qaPrompt(req types.TaskRequest, excerpt string) string {
	return fmt.Sprintf(`Based on the provided context, answer the following question clearly and comprehensively:

Question: %s

Context:
%s

Provide a detailed, educational answer. If the answer isn't directly in the context, say so and provide the best related information available.`, req.Question, excerpt)
}

func teachingNotesPrompt(_ types.TaskRequest, excerpt string) string {
	return fmt.Sprintf(`Create comprehensive teaching notes for educators based on this content. Include:

1. Learning Objectives
2. Key Teaching Points
3. Discussion Questions
4. Activity Suggestions
5. Assessment Ideas

Content:
%s

Format professionally for classroom use.`, excerpt)
}
