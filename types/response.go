package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// DocumentStats is what the presentation layer renders after an upload.
type DocumentStats struct {
	OriginalName string `json:"original_name"`
	FileName     string `json:"file_name"`
	FileSize     int64  `json:"file_size"`
	Pages        int    `json:"pages"`
	WordCount    int    `json:"word_count"`
	CharCount    int    `json:"char_count"`
	ChunkCount   int    `json:"chunk_count"`
}

type UploadResponse struct {
	SessionID string        `json:"session_id"`
	Document  DocumentStats `json:"document"`
}

type AnalyzeResponse struct {
	Task   TaskKind `json:"task"`
	Result string   `json:"result"`
}

type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
