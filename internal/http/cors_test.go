package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	testCases := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantOrigin string
		wantStatus int
	}{
		{"allowed origin", []string{"http://localhost:3000"}, http.MethodGet, "http://localhost:3000", "http://localhost:3000", http.StatusTeapot},
		{"unknown origin", []string{"http://localhost:3000"}, http.MethodGet, "http://evil.example", "", http.StatusTeapot},
		{"wildcard", []string{"*"}, http.MethodGet, "http://any.example", "http://any.example", http.StatusTeapot},
		{"preflight", []string{"http://localhost:3000"}, http.MethodOptions, "http://localhost:3000", "http://localhost:3000", http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/beds", nil)
			req.Header.Set("Origin", tc.origin)
			rr := httptest.NewRecorder()

			CORSMiddleware(tc.allowed)(next).ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Errorf("Expected allow-origin %q, got %q", tc.wantOrigin, got)
			}
		})
	}
}
