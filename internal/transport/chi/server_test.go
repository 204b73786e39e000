package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopbot/internal/domain"
	healthuc "github.com/kailas-cloud/shopbot/internal/usecase/health"
)

// --- Mocks ---

type mockExtractor struct {
	intent domain.Intent
	err    error
	calls  int
}

func (m *mockExtractor) Extract(_ context.Context, _ string) (domain.Intent, error) {
	m.calls++
	return m.intent, m.err
}

type mockFilter struct {
	result []domain.Product
}

func (m *mockFilter) Filter(products []domain.Product, _ domain.Intent) []domain.Product {
	if m.result != nil {
		return m.result
	}
	return products
}

type mockCatalog struct {
	products []domain.Product
}

func (m *mockCatalog) Products() []domain.Product { return m.products }
func (m *mockCatalog) Len() int                   { return len(m.products) }

func testServer(extractor *mockExtractor, filter *mockFilter, catalog *mockCatalog) http.Handler {
	srv := NewServer(extractor, filter, catalog, healthuc.New(nil, nil, catalog.Len()), zap.NewNop())
	r := gochi.NewRouter()
	srv.Routes(r)
	return r
}

func chatBody(message string) *strings.Reader {
	b, _ := json.Marshal(chatRequest{Message: message})
	return strings.NewReader(string(b))
}

// --- Tests ---

func TestHandleChat_Success(t *testing.T) {
	catalog := &mockCatalog{products: []domain.Product{
		{ID: "p1", Name: "Air Runner", Category: "sneakers", Price: 89.99},
		{ID: "p2", Name: "Oxford Noir", Category: "formal", Price: 149.99},
	}}
	extractor := &mockExtractor{intent: domain.Intent{Category: "sneakers"}}
	filter := &mockFilter{result: catalog.products[:1]}
	handler := testServer(extractor, filter, catalog)

	req := httptest.NewRequest("POST", "/api/v1/chat", chatBody("sneakers please"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp chatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].ID != "p1" {
		t.Errorf("unexpected products: %+v", resp.Products)
	}
	if resp.Intent.Category != "sneakers" {
		t.Errorf("intent category = %q, want sneakers", resp.Intent.Category)
	}
	if resp.Debug.OriginalMessage != "sneakers please" {
		t.Errorf("debug original message = %q", resp.Debug.OriginalMessage)
	}
	if resp.Debug.TotalProducts != 2 || resp.Debug.FilteredCount != 1 {
		t.Errorf("debug counters = %d/%d, want 2/1", resp.Debug.TotalProducts, resp.Debug.FilteredCount)
	}
	if resp.Debug.ExtractedIntent.Category != "sneakers" {
		t.Errorf("debug intent category = %q", resp.Debug.ExtractedIntent.Category)
	}
}

func TestHandleChat_EmptyMessage_400(t *testing.T) {
	extractor := &mockExtractor{}
	handler := testServer(extractor, &mockFilter{}, &mockCatalog{})

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
		req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %s: got %d, want %d", body, rr.Code, http.StatusBadRequest)
		}
	}
	if extractor.calls != 0 {
		t.Errorf("extractor must not run for empty messages, got %d calls", extractor.calls)
	}
}

func TestHandleChat_InvalidJSON_400(t *testing.T) {
	handler := testServer(&mockExtractor{}, &mockFilter{}, &mockCatalog{})

	req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader("not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("got %d, want %d", rr.Code, http.StatusBadRequest)
	}

	var errResp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error != "Message is required" {
		t.Errorf("error = %q", errResp.Error)
	}
}

func TestHandleChat_ExtractorError_500(t *testing.T) {
	extractor := &mockExtractor{err: errors.New("pipeline broke")}
	handler := testServer(extractor, &mockFilter{}, &mockCatalog{})

	req := httptest.NewRequest("POST", "/api/v1/chat", chatBody("anything"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusInternalServerError)
	}

	var errResp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error != "Failed to process message" {
		t.Errorf("error = %q", errResp.Error)
	}
	if errResp.Details == "" {
		t.Error("expected details on 500")
	}
}

func TestHandleChat_DegradedIntentReturnsFullCatalog(t *testing.T) {
	catalog := &mockCatalog{products: []domain.Product{
		{ID: "p1"}, {ID: "p2"}, {ID: "p3"},
	}}
	// Degraded intent plus a pass-through filter: everything comes back.
	handler := testServer(&mockExtractor{intent: domain.DegradedIntent()}, &mockFilter{}, catalog)

	req := httptest.NewRequest("POST", "/api/v1/chat", chatBody("gibberish"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("degraded extraction must not 500, got %d", rr.Code)
	}

	var resp chatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Products) != 3 {
		t.Errorf("expected full catalog, got %d products", len(resp.Products))
	}
}

func TestHealthCheck(t *testing.T) {
	catalog := &mockCatalog{products: []domain.Product{{ID: "p1"}, {ID: "p2"}}}
	handler := testServer(&mockExtractor{}, &mockFilter{}, catalog)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}

	var resp healthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
	if resp.Products != 2 {
		t.Errorf("products = %d, want 2", resp.Products)
	}
}
