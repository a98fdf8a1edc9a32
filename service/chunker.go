package service

import (
	"strings"

	"github.com/tieubaoca/eduinsights-be/types"
)

var DefaultDocumentServiceConfig = types.DocumentServiceConfig{
	MaxChunkSize: 3000,
}

// Chunker splits document text into word-aligned chunks bounded by a
// character budget. Joining the chunks with single spaces reproduces
// the whitespace-normalized input.
type Chunker struct {
	maxChunkSize int
}

// NewChunker creates a chunker with the configured chunk size budget.
func NewChunker(config types.DocumentServiceConfig) *Chunker {
	if config.MaxChunkSize <= 0 {
		config.MaxChunkSize = DefaultDocumentServiceConfig.MaxChunkSize
	}
	return &Chunker{
		maxChunkSize: config.MaxChunkSize,
	}
}

// ChunkText tokenizes text on whitespace and accumulates words into
// chunks. Each word accounts for its length plus one separator; when
// the running size would exceed the budget the current chunk is closed
// and the word seeds the next one. A single word longer than the budget
// is still emitted whole as its own chunk, never split.
func (c *Chunker) ChunkText(text string) []string {
	words := strings.Fields(text)

	var chunks []string
	var currentChunk []string
	currentSize := 0

	for _, word := range words {
		currentSize += len(word) + 1
		if currentSize > c.maxChunkSize && len(currentChunk) > 0 {
			chunks = append(chunks, strings.Join(currentChunk, " "))
			currentChunk = []string{word}
			currentSize = len(word)
		} else {
			currentChunk = append(currentChunk, word)
		}
	}

	if len(currentChunk) > 0 {
		chunks = append(chunks, strings.Join(currentChunk, " "))
	}

	return chunks
}
