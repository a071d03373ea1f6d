package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndewijer/numfmt/internal/api"
	"github.com/ndewijer/numfmt/internal/api/middleware"
	"github.com/ndewijer/numfmt/internal/config"
	"github.com/ndewijer/numfmt/internal/metrics"
	"github.com/ndewijer/numfmt/internal/repository"
	"github.com/ndewijer/numfmt/internal/service"
	"github.com/ndewijer/numfmt/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	m := metrics.New()
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}}

	return api.NewRouter(
		service.NewSystemService(db),
		service.NewNumberService(m),
		service.NewShopService(repository.NewShopRepository(db)),
		m,
		cfg,
	)
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{"health", "/api/system/health", http.StatusOK, `"healthy"`},
		{"version", "/api/system/version", http.StatusOK, `"db_version":2`},
		{"round", "/api/numbers/round?value=2", http.StatusOK, `"formatted":"2.00"`},
		{"fraction", "/api/numbers/fraction?value=123.4", http.StatusOK, `"digits":40`},
		{"missing value", "/api/numbers/round", http.StatusBadRequest, "value parameter is required"},
		{"order totals are not shadowed by the order route", "/api/shop/orders/totals", http.StatusOK, `"total":2000`},
		{"single order", "/api/shop/orders/1", http.StatusOK, `"quantity":2`},
		{"unknown route", "/api/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantCode {
				t.Fatalf("Expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("Expected body to contain %s, got %s", tt.wantBody, w.Body.String())
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("Expected a request ID header")
			}
		})
	}

	t.Run("metrics endpoint reports conversions", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `numfmt_operations_total{operation="round",status="success"}`) {
			t.Errorf("Expected round operations in metrics output")
		}
	})
}
