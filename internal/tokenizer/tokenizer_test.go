package tokenizer

import (
	"strings"
	"testing"
)

type wordCounter struct{}

func (wordCounter) Name() string { return "words" }

func (wordCounter) CountString(input string) (int, error) {
	return len(strings.Fields(input)), nil
}

func TestCountText(t *testing.T) {
	tokens, err := CountText(wordCounter{}, "# Folder Tree\n\n## Summary")
	if err != nil {
		t.Fatalf("CountText error: %v", err)
	}
	if tokens != 5 {
		t.Fatalf("expected 5 tokens, got %d", tokens)
	}
}

func TestCountTextRejectsNilCounter(t *testing.T) {
	if _, err := CountText(nil, "text"); err == nil {
		t.Fatalf("expected error for nil counter")
	}
}

func TestOpenAICounterRejectsNilEncoding(t *testing.T) {
	if _, err := (openAICounter{name: "empty"}).CountString("text"); err == nil {
		t.Fatalf("expected error for nil encoding")
	}
}
