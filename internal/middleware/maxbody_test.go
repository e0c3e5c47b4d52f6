package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMaxBody(t *testing.T) {
	var readErr error
	var got []byte
	handler := MaxBody(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, readErr = io.ReadAll(r.Body)
	}))

	t.Run("under limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("tiny"))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		if readErr != nil {
			t.Fatalf("read error for body under limit: %v", readErr)
		}
		if string(got) != "tiny" {
			t.Errorf("body = %q", got)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("well over the eight byte cap"))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		if readErr == nil {
			t.Error("expected read error for oversized body")
		}
	})
}
