package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-flash"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gemini-2.0-flash" {
		t.Errorf("ModelID = %q", p.ModelID())
	}

	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(testWordSchema.Definition)

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %v, want object", s.Type)
	}
	word, ok := s.Properties["word"]
	if !ok || word.Type != genai.TypeString {
		t.Fatalf("word property = %+v", word)
	}
	lang := s.Properties["lang"]
	if len(lang.Enum) != 3 || lang.Enum[0] != "en" {
		t.Errorf("lang enum = %v", lang.Enum)
	}
	if len(s.Required) != 1 || s.Required[0] != "word" {
		t.Errorf("required = %v", s.Required)
	}

	list := geminiSchema(map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	})
	if list.Type != genai.TypeArray || list.Items == nil || list.Items.Type != genai.TypeString {
		t.Errorf("array schema = %+v", list)
	}
}

func TestStringList(t *testing.T) {
	if got := stringList([]string{"a"}); len(got) != 1 {
		t.Errorf("[]string: %v", got)
	}
	if got := stringList([]any{"a", 1, "b"}); len(got) != 2 || got[1] != "b" {
		t.Errorf("[]any: %v", got)
	}
	if got := stringList(nil); got != nil {
		t.Errorf("nil: %v", got)
	}
}
