package types

import "testing"

func TestNewDocument(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantWords int
		wantChars int
	}{
		{name: "empty", text: "", wantWords: 0, wantChars: 0},
		{name: "simple", text: "one two three", wantWords: 3, wantChars: 13},
		{name: "mixed whitespace", text: "a\nb\tc  d", wantWords: 4, wantChars: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument(tt.text)
			if doc.WordCount != tt.wantWords {
				t.Errorf("WordCount = %d, want %d", doc.WordCount, tt.wantWords)
			}
			if doc.CharCount != tt.wantChars {
				t.Errorf("CharCount = %d, want %d", doc.CharCount, tt.wantChars)
			}
			if doc.Text != tt.text {
				t.Errorf("Text = %q, want %q", doc.Text, tt.text)
			}
		})
	}
}
