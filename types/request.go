package types

type AnalyzeRequest struct {
	SessionID string   `json:"session_id"`
	Task      TaskKind `json:"task"`
	Role      UserRole `json:"role,omitempty"`
}

type AskRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

type UploadRequest struct {
	Title string   `json:"title"`
	Role  UserRole `json:"role,omitempty"`
}
