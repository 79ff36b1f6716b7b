package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestParseLevelDefaults(t *testing.T) {
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %v", lvl)
	}
	if lvl := ParseLevel("nope"); lvl != zerolog.InfoLevel {
		t.Fatalf("invalid level should fall back to info, got %v", lvl)
	}
	if lvl := ParseLevel(" DEBUG "); lvl != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %v", lvl)
	}
}

func TestMiddlewareAttachesRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}
	base := Setup(Options{ServiceName: "test", Level: "debug", Output: buf})

	r := gin.New()
	r.Use(Middleware(base))
	r.GET("/x", func(c *gin.Context) {
		zerolog.Ctx(WithUserID(c.Request.Context(), "u1")).Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get(RequestIDHeader) != "req-123" {
		t.Fatalf("expected request id to be echoed, got %q", w.Header().Get(RequestIDHeader))
	}
	out := buf.String()
	for _, want := range []string{`"request_id":"req-123"`, `"user_id":"u1"`, `"message":"inside handler"`, `"message":"request completed"`, `"status":204`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log output:\n%s", want, out)
		}
	}
}

func TestMiddlewareGeneratesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := Setup(Options{ServiceName: "test", Output: &bytes.Buffer{}})

	r := gin.New()
	r.Use(Middleware(base))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}
}
