package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func completionResponse(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(body)
}

func TestCompleteReturnsFirstChoiceText(t *testing.T) {
	var gotPayload completionRequest
	var gotAuth string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("failed to decode upstream payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("  Título: Caneca\nDescrição: Bonita.  ")))
	}))
	defer upstream.Close()

	client := NewClient(5*time.Second, 0.7, 350)
	provider := Provider{Name: "Test", BaseURL: upstream.URL, APIKey: "test-key"}

	text, err := client.Complete(context.Background(), provider, "test-model",
		BuildMessages("system", "prompt", ""))
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if text != "Título: Caneca\nDescrição: Bonita." {
		t.Errorf("expected trimmed pass-through text, got %q", text)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected Bearer auth header, got %q", gotAuth)
	}
	if gotPayload.Model != "test-model" {
		t.Errorf("expected model test-model, got %q", gotPayload.Model)
	}
	if gotPayload.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", gotPayload.Temperature)
	}
	if gotPayload.MaxTokens != 350 {
		t.Errorf("expected max_tokens 350, got %d", gotPayload.MaxTokens)
	}
	if gotPayload.Stream {
		t.Error("expected stream false")
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := NewClient(5*time.Second, 0.7, 350)
	provider := Provider{BaseURL: upstream.URL, APIKey: "k"}

	_, err := client.Complete(context.Background(), provider, "m", BuildMessages("s", "p", ""))
	if err == nil {
		t.Fatal("expected error for upstream 500")
	}
	if errors.Is(err, ErrEmptyCompletion) {
		t.Error("upstream 500 must not be reported as empty completion")
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"choices":[]}`},
		{"blank content", completionResponse("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer upstream.Close()

			client := NewClient(5*time.Second, 0.7, 350)
			provider := Provider{BaseURL: upstream.URL, APIKey: "k"}

			_, err := client.Complete(context.Background(), provider, "m", BuildMessages("s", "p", ""))
			if !errors.Is(err, ErrEmptyCompletion) {
				t.Errorf("expected ErrEmptyCompletion, got %v", err)
			}
		})
	}
}

func TestCompleteUnreachableUpstream(t *testing.T) {
	client := NewClient(500*time.Millisecond, 0.7, 350)
	provider := Provider{BaseURL: "http://127.0.0.1:1", APIKey: "k"}

	_, err := client.Complete(context.Background(), provider, "m", BuildMessages("s", "p", ""))
	if err == nil {
		t.Fatal("expected error for unreachable upstream")
	}
}
