package types

import "strings"

// Document is the extracted plain text of one uploaded PDF together
// with its derived statistics. It is immutable once built and lives
// only as long as the session that owns it.
type Document struct {
	Text      string   // Extracted plain text
	FileName  string   // Stored file name under the upload directory
	FileSize  int64    // Uploaded file size in bytes
	Pages     int      // Total pages in the PDF
	WordCount int      // Whitespace-separated words in Text
	CharCount int      // Characters in Text
	Chunks    []string // Word-aligned chunks of Text, in extraction order
}

// NewDocument derives the word and character counts from text.
// Chunks are attached separately by the caller.
func NewDocument(text string) *Document {
	return &Document{
		Text:      text,
		WordCount: len(strings.Fields(text)),
		CharCount: len(text),
	}
}

// DocumentServiceConfig contains configuration options for document processing
type DocumentServiceConfig struct {
	MaxChunkSize int // Maximum size for text chunks, in characters
}
