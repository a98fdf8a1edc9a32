package service

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/tieubaoca/eduinsights-be/types"
)

// PDFService extracts plain text from PDF bytes and derives the
// session document with its chunk sequence and statistics.
type PDFService struct {
	chunker *Chunker
}

// NewPDFService creates a new PDF service with configurable chunk sizes
func NewPDFService(config types.DocumentServiceConfig) *PDFService {
	return &PDFService{
		chunker: NewChunker(config),
	}
}

// ExtractDocument parses the uploaded PDF bytes and returns the
// extracted Document. Pages that fail to yield text are skipped rather
// than failing the whole file; an ExtractionError is returned only when
// no page produced any text (corrupt, encrypted, or image-only PDF).
func (s *PDFService) ExtractDocument(data []byte) (*types.Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &types.ExtractionError{Reason: "could not open PDF", Err: err}
	}

	totalPages := reader.NumPage()
	var textBuilder strings.Builder

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			zap.S().Warnw("failed to extract page text", "page", pageNum, "error", err)
			continue // Skip failed pages instead of returning error
		}

		pageText = s.cleanText(pageText)
		if pageText == "" {
			continue
		}

		if textBuilder.Len() > 0 {
			textBuilder.WriteString("\n")
		}
		textBuilder.WriteString(pageText)
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return nil, &types.ExtractionError{Reason: "no text content found in PDF"}
	}

	doc := types.NewDocument(text)
	doc.Pages = totalPages
	doc.Chunks = s.chunker.ChunkText(text)
	return doc, nil
}

func (s *PDFService) cleanText(text string) string {

	replacements := map[string]string{
		"\u0000": "",   // Null character
		"\ufffd": "",   // Unicode replacement character
		"\u001b": "",   // Escape character
		"\r":     "",   // Carriage return
		"\f":     "\n", // Form feed to newline
		"  ":     " ",  // Multiple spaces to single space
	}
	// Apply replacements
	cleaned := text
	for old, new := range replacements {
		cleaned = strings.ReplaceAll(cleaned, old, new)
	}

	// Trim leading/trailing whitespace
	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}
