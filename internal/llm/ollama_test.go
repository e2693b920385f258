package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewOllamaClientValidation(t *testing.T) {
	if _, err := NewOllamaClient("", "llama3", 0); err == nil {
		t.Error("expected error for empty base url")
	}
	if _, err := NewOllamaClient("http://localhost:11434", "", 0); err == nil {
		t.Error("expected error for empty model")
	}
	c, err := NewOllamaClient("http://localhost:11434/", "llama3", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL != "http://localhost:11434" {
		t.Errorf("expected trailing slash trimmed, got %s", c.baseURL)
	}
}

func TestOllamaComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Model != "llama3" {
			t.Errorf("expected model llama3, got %s", req.Model)
		}
		if req.Stream {
			t.Error("expected stream=false")
		}
		json.NewEncoder(w).Encode(generateResponse{Response: "hello there"})
	}))
	defer srv.Close()

	c, err := NewOllamaClient(srv.URL, "llama3", 5*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := c.Complete(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello there" {
		t.Errorf("expected verbatim response, got %q", out)
	}
}

func TestOllamaCompleteErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(generateResponse{Error: "model 'nope' not found"})
	}))
	defer srv.Close()

	c, _ := NewOllamaClient(srv.URL, "nope", time.Second)
	_, err := c.Complete(context.Background(), "hi")
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("expected ErrGeneration, got %v", err)
	}
}

func TestOllamaCompleteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c, _ := NewOllamaClient(srv.URL, "llama3", time.Second)
	_, err := c.Complete(context.Background(), "hi")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestOllamaCompleteEmptyPrompt(t *testing.T) {
	c, _ := NewOllamaClient("http://localhost:11434", "llama3", time.Second)
	if _, err := c.Complete(context.Background(), ""); err == nil {
		t.Error("expected error for empty prompt")
	}
}
