package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func serveThroughLogger(level zerolog.Level, buf *bytes.Buffer) {
	logger := zerolog.New(buf).Level(level)
	handler := LoggerMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestLoggerMiddlewareWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	serveThroughLogger(zerolog.DebugLevel, &buf)

	line := buf.String()
	if line == "" {
		t.Fatal("expected a request log line at debug level")
	}
	if !strings.Contains(line, `"method":"GET"`) || !strings.Contains(line, `"path":"/courses"`) {
		t.Fatalf("unexpected log line: %s", line)
	}
}

func TestLoggerMiddlewareQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	serveThroughLogger(zerolog.InfoLevel, &buf)

	if buf.Len() != 0 {
		t.Fatalf("expected no request line at info level, got %s", buf.String())
	}
}
