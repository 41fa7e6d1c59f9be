package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestTranslateGoogleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantUnauth  bool
		wantMessage string
	}{
		{
			name:        "expired token maps to unauthorized",
			err:         &googleapi.Error{Code: http.StatusUnauthorized, Message: "Invalid Credentials"},
			wantUnauth:  true,
			wantMessage: "Google token expired",
		},
		{
			name:        "wrapped 401 still maps to unauthorized",
			err:         fmt.Errorf("inserting event: %w", &googleapi.Error{Code: http.StatusUnauthorized}),
			wantUnauth:  true,
			wantMessage: "Google token expired",
		},
		{
			name:        "forbidden stays a provider error",
			err:         &googleapi.Error{Code: http.StatusForbidden, Message: "insufficient scopes"},
			wantMessage: "insufficient scopes",
		},
		{
			name:        "server error stays a provider error",
			err:         &googleapi.Error{Code: http.StatusInternalServerError, Message: "backend error"},
			wantMessage: "backend error",
		},
		{
			name:        "non-google error keeps its message",
			err:         errors.New("connection refused"),
			wantMessage: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateGoogleError(tt.err)

			if tt.wantUnauth {
				var unauthErr *UnauthorizedError
				if !errors.As(got, &unauthErr) {
					t.Fatalf("translated to %T, want *UnauthorizedError", got)
				}
				if unauthErr.Message != tt.wantMessage {
					t.Errorf("message = %q, want %q", unauthErr.Message, tt.wantMessage)
				}
				return
			}

			var provErr *ProviderError
			if !errors.As(got, &provErr) {
				t.Fatalf("translated to %T, want *ProviderError", got)
			}
			if !strings.Contains(provErr.Message, tt.wantMessage) {
				t.Errorf("message = %q, want it to contain %q", provErr.Message, tt.wantMessage)
			}
		})
	}
}
