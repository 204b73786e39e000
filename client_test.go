package shopbot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kailas-cloud/shopbot/internal/domain"
)

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/chat" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}

		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Message != "cheap sandals" {
			t.Errorf("message = %q", req.Message)
		}

		_ = json.NewEncoder(w).Encode(ChatResponse{
			Products: []domain.Product{{ID: "p3", Name: "Beach Slide", Category: "sandals", Price: 19.99}},
			Intent:   domain.Intent{Category: "sandals"},
			Debug:    ChatDebug{OriginalMessage: req.Message, TotalProducts: 12, FilteredCount: 1},
		})
	}))
	defer srv.Close()

	client, err := New(srv.URL, WithAPIKey("secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.Chat(context.Background(), "cheap sandals")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].ID != "p3" {
		t.Errorf("unexpected products: %+v", resp.Products)
	}
	if resp.Intent.Category != "sandals" {
		t.Errorf("intent category = %q", resp.Intent.Category)
	}
	if resp.Debug.FilteredCount != 1 {
		t.Errorf("filtered count = %d", resp.Debug.FilteredCount)
	}
}

func TestChat_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Message is required"}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.Chat(context.Background(), "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Message is required" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status": "ok", "products": 12}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "ok" {
		t.Errorf("status = %q, want ok", status)
	}
}
