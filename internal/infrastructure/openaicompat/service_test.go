package openaicompat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calliope-ai/calliope/internal/config"
	"github.com/calliope-ai/calliope/internal/generation"
)

func testConfig(endpoint string) *config.LLMConfig {
	return &config.LLMConfig{
		Provider: config.ProviderOpenAI,
		Endpoint: endpoint,
		Model:    "llama3.1:8b",
		APIKey:   "unused",
		Timeout:  2 * time.Second,
	}
}

func testPayload() *generation.Payload {
	return &generation.Payload{
		System:   "You are a chatbot.",
		Messages: []generation.Message{{Role: generation.RoleUser, Content: "hello"}},
		Options:  generation.Options{Temperature: 0.5, MaxTokens: 100},
	}
}

func completionBody(text string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "llama3.1:8b",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": text},
				"finish_reason": "stop",
			},
		},
	}
}

func TestGenerateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected path /chat/completions, got %s", r.URL.Path)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		msgs := req["messages"].([]any)
		first := msgs[0].(map[string]any)
		if first["role"] != "system" {
			t.Errorf("expected system message first, got %v", first)
		}
		json.NewEncoder(w).Encode(completionBody("hi there"))
	}))
	defer server.Close()

	svc := NewService(testConfig(server.URL))
	got, err := svc.Generate(context.Background(), testPayload())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "hi there" {
		t.Errorf("expected reply %q, got %q", "hi there", got)
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := completionBody("")
		body["choices"] = []any{}
		json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	svc := NewService(testConfig(server.URL))
	_, err := svc.Generate(context.Background(), testPayload())

	var protoErr *generation.ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("expected ProtocolError, got %T: %v", err, err)
	}
}

func TestGenerateEmptyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionBody(""))
	}))
	defer server.Close()

	svc := NewService(testConfig(server.URL))
	_, err := svc.Generate(context.Background(), testPayload())

	var protoErr *generation.ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("expected ProtocolError, got %T: %v", err, err)
	}
}

func TestGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
	}))
	defer server.Close()

	svc := NewService(testConfig(server.URL))
	_, err := svc.Generate(context.Background(), testPayload())

	var protoErr *generation.ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("expected ProtocolError, got %T: %v", err, err)
	}
	if protoErr.Status != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", protoErr.Status)
	}
}

func TestGenerateConnectivityError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	svc := NewService(testConfig(endpoint))
	_, err := svc.Generate(context.Background(), testPayload())

	var connErr *generation.ConnectivityError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectivityError, got %T: %v", err, err)
	}
}

func TestGenerateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Timeout = 30 * time.Millisecond

	svc := NewService(cfg)
	_, err := svc.Generate(context.Background(), testPayload())

	var timeoutErr *generation.TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected TimeoutError, got %T: %v", err, err)
	}
}
