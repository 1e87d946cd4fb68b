package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/isandov/storefront-be/internal/models"
)

type stubUsers struct{}

func (stubUsers) CreateUser(ctx context.Context, email, password, ip string) (models.User, error) {
	return models.User{ID: 1, Email: email, IP: ip, CreatedAt: time.Unix(0, 0).UTC()}, nil
}

func (stubUsers) ListUsers(ctx context.Context) ([]models.User, error) {
	return []models.User{}, nil
}

func (stubUsers) ListVisitorLogs(ctx context.Context) ([]models.VisitorLog, error) {
	return []models.VisitorLog{}, nil
}

type stubProducts struct{}

func (stubProducts) CreateProduct(ctx context.Context, title string, description *string, price float64, image *string) (models.Product, error) {
	return models.Product{ID: 1, Title: title, Description: description, Price: price, Image: image}, nil
}

func (stubProducts) ListProducts(ctx context.Context) ([]models.Product, error) {
	return []models.Product{}, nil
}

type stubHealth struct{}

func (stubHealth) Now(ctx context.Context) (time.Time, error) {
	return time.Unix(0, 0).UTC(), nil
}

func newTestRouter() http.Handler {
	return NewRouter(stubUsers{}, stubProducts{}, stubHealth{})
}

func TestRouterRoot(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "API is running ✅" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestRouterDispatchesCreateUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestRouterCORSAllowsAnyOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("X-Request-Id header missing")
	}
}

func TestRouterUnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/logs", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
