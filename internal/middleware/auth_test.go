package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func protectedHandler(t *testing.T, wantUID, wantEmail string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid := GetUserID(r.Context()); uid != wantUID {
			t.Errorf("uid = %q, want %q", uid, wantUID)
		}
		if email := GetUserEmail(r.Context()); email != wantEmail {
			t.Errorf("email = %q, want %q", email, wantEmail)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTAuthRoundTrip(t *testing.T) {
	auth := NewJWTAuth("test-secret")

	token, err := auth.GenerateAccessToken("google-sub-1", "user@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	auth.Middleware(protectedHandler(t, "google-sub-1", "user@example.com")).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestJWTAuthRejections(t *testing.T) {
	auth := NewJWTAuth("test-secret")
	otherAuth := NewJWTAuth("other-secret")

	foreignToken, err := otherAuth.GenerateAccessToken("google-sub-1", "user@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/data/goals", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
			auth.Middleware(next).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if called {
				t.Error("next handler ran for a rejected request")
			}
		})
	}
}
