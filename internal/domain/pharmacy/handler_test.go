package pharmacy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospitalops/hospitalops/internal/platform/web"
)

type mockRepo struct {
	items []*Item
	err   error
}

func (m *mockRepo) List(context.Context) ([]*Item, error) { return m.items, m.err }

func newTestServer(repo Repository) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = web.HTTPErrorHandler(zerolog.Nop())
	NewHandler(repo).RegisterRoutes(e.Group("/api"))
	return e
}

func TestListHandler(t *testing.T) {
	repo := &mockRepo{items: []*Item{
		{ID: uuid.New(), Name: "Ibuprofen 400mg", Quantity: 200, Status: StatusInStock},
	}}
	req := httptest.NewRequest(http.MethodGet, "/api/pharmacy", nil)
	rec := httptest.NewRecorder()
	newTestServer(repo).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var views []ItemView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(views) != 1 || views[0].Status != "In stock" || views[0].Category != placeholder {
		t.Errorf("unexpected views %+v", views)
	}
}

func TestListHandlerStoreError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/pharmacy", nil)
	rec := httptest.NewRecorder()
	newTestServer(&mockRepo{err: errors.New("timeout")}).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != web.DatabaseErrorMessage {
		t.Errorf("error = %q, want %q", body["error"], web.DatabaseErrorMessage)
	}
}
