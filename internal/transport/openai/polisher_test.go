package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/acadex-io/acadex/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterPipelineMetrics()
	os.Exit(m.Run())
}

// chatCompletionResponse mirrors the OpenAI-compatible chat completion response.
type chatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func completionResponse(content string) chatCompletionResponse {
	resp := chatCompletionResponse{
		ID:     "chatcmpl-test",
		Object: "chat.completion",
		Model:  "test-model",
	}
	resp.Choices = append(resp.Choices, struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	}{FinishReason: "stop"})
	resp.Choices[0].Message.Role = "assistant"
	resp.Choices[0].Message.Content = content
	resp.Usage.TotalTokens = 30
	return resp
}

func TestPolisher_Polish(t *testing.T) {
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("  Polished answer.  "))
	}))
	defer server.Close()

	p, err := NewPolisher(&Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "test-model",
		Logger:  zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewPolisher failed: %v", err)
	}

	out, err := p.Polish(context.Background(), "Raw answer.", []string{"Minimum GPA 3.2"})
	if err != nil {
		t.Fatalf("Polish failed: %v", err)
	}
	if out != "Polished answer." {
		t.Errorf("Polish = %q, expected trimmed content", out)
	}

	if gotBody.Model != "test-model" {
		t.Errorf("request model = %q, expected test-model", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "system" {
		t.Errorf("first message role = %q, expected system", gotBody.Messages[0].Role)
	}
	user := gotBody.Messages[1].Content
	if !strings.Contains(user, "Minimum GPA 3.2") {
		t.Errorf("user prompt does not include the source text: %q", user)
	}
	if !strings.Contains(user, "Raw answer.") {
		t.Errorf("user prompt does not include the original answer: %q", user)
	}
}

func TestPolisher_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "rate limit exceeded",
				"type":    "rate_limit_error",
			},
		})
	}))
	defer server.Close()

	p, err := NewPolisher(&Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "test-model",
		Logger:  zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewPolisher failed: %v", err)
	}

	if _, err := p.Polish(context.Background(), "Raw answer.", nil); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestPolisher_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletionResponse{ID: "chatcmpl-test", Object: "chat.completion"})
	}))
	defer server.Close()

	p, err := NewPolisher(&Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Logger:  zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewPolisher failed: %v", err)
	}

	if _, err := p.Polish(context.Background(), "Raw answer.", nil); err == nil {
		t.Fatal("expected error for response without choices")
	}
}

func TestNewPolisher_RequiresAPIKey(t *testing.T) {
	if _, err := NewPolisher(&Config{Logger: zap.NewNop()}); err == nil {
		t.Fatal("expected error when API key is missing")
	}
}
