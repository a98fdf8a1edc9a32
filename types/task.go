package types

// TaskKind identifies one of the analysis actions a user can trigger
// against an uploaded document.
type TaskKind string

const (
	TaskSummary        TaskKind = "summary"
	TaskKeyPoints      TaskKind = "key_points"
	TaskStudyQuestions TaskKind = "study_questions"
	TaskQA             TaskKind = "qa"
	TaskTeachingNotes  TaskKind = "teaching_notes"
)

// UserRole tailors the phrasing of generated material.
type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleTeacher    UserRole = "teacher"
	RoleResearcher UserRole = "researcher"
)

// ValidTaskKind reports whether k names a supported analysis task.
func ValidTaskKind(k TaskKind) bool {
	switch k {
	case TaskSummary, TaskKeyPoints, TaskStudyQuestions, TaskQA, TaskTeachingNotes:
		return true
	}
	return false
}

// ValidUserRole reports whether r is one of the supported roles.
func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleResearcher:
		return true
	}
	return false
}

// TaskRequest pairs a task kind with the document text it should run
// against. Question is only set for the qa task. A TaskRequest lives for
// a single request/response cycle.
type TaskRequest struct {
	Kind     TaskKind
	Role     UserRole
	Text     string
	Question string
}

// TaskResult holds the generated text for one TaskRequest.
type TaskResult struct {
	Kind TaskKind `json:"kind"`
	Text string   `json:"text"`
}

// StreamHandler receives incremental response fragments from a
// streaming completion.
type StreamHandler func(response string)
