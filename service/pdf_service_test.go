package service

import (
	"errors"
	"testing"

	"github.com/tieubaoca/eduinsights-be/types"
)

func TestExtractDocument_InvalidBytes(t *testing.T) {
	svc := NewPDFService(DefaultDocumentServiceConfig)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "not a pdf", data: []byte("plain text, not a PDF")},
		{name: "truncated header", data: []byte("%PDF-1.4")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ExtractDocument(tt.data)
			if err == nil {
				t.Fatal("expected error for invalid PDF bytes")
			}
			var extractionErr *types.ExtractionError
			if !errors.As(err, &extractionErr) {
				t.Errorf("err = %v, want ExtractionError", err)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	svc := NewPDFService(DefaultDocumentServiceConfig)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "null bytes removed", in: "a\x00b", want: "ab"},
		{name: "replacement char removed", in: "a\ufffdb", want: "ab"},
		{name: "escape char removed", in: "a\u001bb", want: "ab"},
		{name: "carriage returns removed", in: "line1\r\nline2", want: "line1\nline2"},
		{name: "form feed to newline", in: "page1\fpage2", want: "page1\npage2"},
		{name: "double spaces collapsed", in: "a  b", want: "a b"},
		{name: "trimmed", in: "  text  ", want: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.cleanText(tt.in); got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
