package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"matchboard/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.identityMiddleware, func(c *gin.Context) {
		ident, _ := currentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "id": ident.ID, "username": ident.Username})
	})
	return r
}

func TestIdentityMiddleware_Errors(t *testing.T) {
	type want struct {
		code   int
		errMsg string
	}
	cases := []struct {
		name     string
		header   string
		parseErr error
		want     want
	}{
		{
			name:   "missing header",
			header: "",
			want:   want{code: http.StatusUnauthorized, errMsg: "authentication required"},
		},
		{
			name:   "invalid scheme",
			header: "Token abc",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:   "bearer without token",
			header: "Bearer",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:     "expired or garbage token",
			header:   "Bearer expired",
			parseErr: errors.New("token is expired"),
			want:     want{code: http.StatusForbidden, errMsg: "invalid or expired token"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseIdent: &service.Identity{ID: 1}, parseErr: tc.parseErr}
			s := &service.Service{Authorization: auth}
			r := newMiddlewareOnlyRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want.code {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want.code, w.Body.String())
			}

			var out struct {
				Message string `json:"message"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Message != tc.want.errMsg {
				t.Fatalf("error message: got %q, want %q", out.Message, tc.want.errMsg)
			}
		})
	}
}

func TestIdentityMiddleware_SuccessStoresIdentity(t *testing.T) {
	auth := &mockAuth{parseIdent: &service.Identity{ID: 123, Username: "alice"}}
	s := &service.Service{Authorization: auth}
	r := newMiddlewareOnlyRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK       bool   `json:"ok"`
		ID       int    `json:"id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.ID != 123 || resp.Username != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastParseToken != "good-token" {
		t.Fatalf("ParseToken got %q, want %q", auth.lastParseToken, "good-token")
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	s := &service.Service{}
	r := newTestRouter(s)

	// generated when absent
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}

	// echoed when supplied
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "caller-supplied-id")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "caller-supplied-id" {
		t.Fatalf("expected caller id to be echoed, got %q", got)
	}
}
