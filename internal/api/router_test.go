package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"go-ideas/internal/config"
	"go-ideas/internal/ideas"
)

func TestSetupRouter_BasicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	svc := ideas.NewService(&fakeGenerator{response: "[]"}, &fakeHolidays{}, nil, false)
	r := SetupRouter(cfg, svc)

	for _, path := range []string{"/ping", "/health", "/config"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s should return 200, got %d", path, w.Code)
		}
	}

	// Ideas route is registered for both verbs (bad requests, not 404s).
	for _, method := range []string{"GET", "POST"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/ideas", nil)
		r.ServeHTTP(w, req)
		if w.Code == http.StatusNotFound {
			t.Errorf("%s /ideas should be routed, got 404", method)
		}
	}
}
