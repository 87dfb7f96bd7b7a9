package mealplan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// openAIChatResponse wraps a content string in the OpenAI chat completions
// response shape (choices[0].message.content).
func openAIChatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"content": content,
				},
			},
		},
	}
}

// newMockOpenAI starts a server that replies with status and body and
// records the last request it received.
func newMockOpenAI(t *testing.T, status int, body interface{}) (*httptest.Server, *openAIRequest, *http.Header) {
	t.Helper()
	var gotReq openAIRequest
	var gotHeader http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotHeader = r.Header.Clone()
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &gotReq, &gotHeader
}

func openAITestConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.OpenAIAPIKey = "test-key"
	cfg.OpenAIBaseURL = baseURL
	return cfg
}

func TestOpenAIGenerator_Success(t *testing.T) {
	srv, gotReq, gotHeader := newMockOpenAI(t, http.StatusOK, openAIChatResponse("Eat oats."))

	gen := NewOpenAIGenerator(openAITestConfig(srv.URL))
	text, err := gen.Generate(context.Background(), "plan please")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Eat oats." {
		t.Errorf("text = %q, want %q", text, "Eat oats.")
	}
	if gotReq.Model != defaultOpenAIModel {
		t.Errorf("model = %q, want %q", gotReq.Model, defaultOpenAIModel)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "plan please" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
	if got := gotHeader.Get("Authorization"); got != "Bearer test-key" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestOpenAIGenerator_ErrorStatus(t *testing.T) {
	srv, _, _ := newMockOpenAI(t, http.StatusTooManyRequests, map[string]string{"error": "quota"})

	gen := NewOpenAIGenerator(openAITestConfig(srv.URL))
	_, err := gen.Generate(context.Background(), "plan please")
	if err == nil || !strings.Contains(err.Error(), "status 429") {
		t.Errorf("expected status 429 error, got %v", err)
	}
}

func TestOpenAIGenerator_NoChoices(t *testing.T) {
	srv, _, _ := newMockOpenAI(t, http.StatusOK, map[string]interface{}{"choices": []interface{}{}})

	gen := NewOpenAIGenerator(openAITestConfig(srv.URL))
	if _, err := gen.Generate(context.Background(), "plan please"); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestOpenAIGenerator_MissingKey(t *testing.T) {
	gen := NewOpenAIGenerator(DefaultConfig())
	if gen.IsAvailable() {
		t.Error("expected IsAvailable=false without a key")
	}
	if _, err := gen.Generate(context.Background(), "plan please"); !errors.Is(err, ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
}
