package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"panaderia_api/internal/adapter/http/middleware"
	"panaderia_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// withSession injects a session the way Authenticate would.
func withSession(s *entities.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s != nil {
			c.Request = c.Request.WithContext(middleware.WithSession(c.Request.Context(), s))
		}
		c.Next()
	}
}

func newTestRouter(s *entities.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withSession(s))
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
}
