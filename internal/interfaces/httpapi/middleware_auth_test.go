package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/campus-league/internal/domain/admin"
	"github.com/riskibarqy/campus-league/internal/usecase"
)

type stubAuthorizer struct {
	token string
	calls int
}

func (s *stubAuthorizer) Verify(_ context.Context, token string) (admin.Principal, error) {
	s.calls++
	if token != s.token {
		return admin.Principal{}, fmt.Errorf("%w: unknown session", usecase.ErrUnauthorized)
	}
	return admin.Principal{Username: "admin"}, nil
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		cookie    string
		wantCode  int
		wantCalls int
	}{
		{name: "bearer token", header: "Bearer good-token", wantCode: http.StatusOK, wantCalls: 1},
		{name: "lowercase scheme", header: "bearer good-token", wantCode: http.StatusOK, wantCalls: 1},
		{name: "session cookie", cookie: "good-token", wantCode: http.StatusOK, wantCalls: 1},
		{name: "header wins over cookie", header: "Bearer bad-token", cookie: "good-token", wantCode: http.StatusUnauthorized, wantCalls: 1},
		{name: "unknown token", header: "Bearer bad-token", wantCode: http.StatusUnauthorized, wantCalls: 1},
		{name: "malformed header", header: "Basic abc", wantCode: http.StatusUnauthorized, wantCalls: 0},
		{name: "no credentials", wantCode: http.StatusUnauthorized, wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorizer := &stubAuthorizer{token: "good-token"}
			var seen admin.Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = principalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/teams", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			RequireAdmin(authorizer, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if authorizer.calls != tt.wantCalls {
				t.Fatalf("expected %d verify calls, got %d", tt.wantCalls, authorizer.calls)
			}
			if tt.wantCode == http.StatusOK && seen.Username != "admin" {
				t.Fatalf("expected principal in context, got %+v", seen)
			}
		})
	}
}

func TestPublicStandingsNeverConsultAuthorizer(t *testing.T) {
	authorizer := &stubAuthorizer{token: "good-token"}
	env := newTestEnv(t, t.TempDir())
	handler := NewRouter(env.handler, authorizer, nil, nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/standings", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if authorizer.calls != 0 {
		t.Fatalf("standings route must not call the authorizer, got %d calls", authorizer.calls)
	}
}
