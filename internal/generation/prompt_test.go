package generation

import (
	"strings"
	"testing"
)

func TestBuildPromptEmbedsFields(t *testing.T) {
	prompt := BuildPrompt(GenerateRequest{
		Categoria:  "tênis",
		Beneficios: "leve e confortável",
		Material:   "tecido respirável",
	})

	for _, want := range []string{
		"Categoria: tênis",
		"Benefícios: leve e confortável",
		"Material: tecido respirável",
		"Título: (título curto)",
		"Descrição: (descrição curta)",
		"no máximo 60 caracteres",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptPlaceholdersForEmptyFields(t *testing.T) {
	prompt := BuildPrompt(GenerateRequest{})

	for _, want := range []string{
		"Categoria: não informado",
		"Benefícios: não informado",
		"Material: não informado",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing placeholder line %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptIsPure(t *testing.T) {
	req := GenerateRequest{Categoria: "caneca", Material: "cerâmica"}

	if BuildPrompt(req) != BuildPrompt(req) {
		t.Error("expected identical prompts for identical requests")
	}
}

func TestBuildMessagesTextOnly(t *testing.T) {
	messages := BuildMessages("system prompt", "user prompt", "")

	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != "system" || messages[0].Content != "system prompt" {
		t.Errorf("unexpected system message: %+v", messages[0])
	}
	if messages[1].Role != "user" {
		t.Errorf("expected user role, got %s", messages[1].Role)
	}
	if content, ok := messages[1].Content.(string); !ok || content != "user prompt" {
		t.Errorf("expected plain string content, got %#v", messages[1].Content)
	}
}

func TestBuildMessagesMultimodal(t *testing.T) {
	imagem := "data:image/png;base64,aGVsbG8="
	messages := BuildMessages("system prompt", "user prompt", imagem)

	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}

	parts, ok := messages[1].Content.([]ContentPart)
	if !ok {
		t.Fatalf("expected multimodal content parts, got %#v", messages[1].Content)
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 content parts, got %d", len(parts))
	}

	if parts[0].Type != "text" || parts[0].Text != "user prompt" {
		t.Errorf("unexpected text part: %+v", parts[0])
	}
	if parts[1].Type != "image_url" || parts[1].ImageURL == nil {
		t.Fatalf("unexpected image part: %+v", parts[1])
	}

	// The data URI must be passed through unmodified.
	if parts[1].ImageURL.URL != imagem {
		t.Errorf("expected data URI passed through unchanged, got %q", parts[1].ImageURL.URL)
	}
}
