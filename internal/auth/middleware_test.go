package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMiddlewareSetsActor(t *testing.T) {
	issuer := NewTokenIssuer(Config{Secret: "s3cret", TTL: time.Hour})
	token, err := issuer.Issue(42)
	require.NoError(t, err)

	var gotID int64
	var gotOK bool
	h := Middleware(issuer, zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = ActorID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/admin/employee", nil)
	req.Header.Set(TokenHeader, token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK)
	require.EqualValues(t, 42, gotID)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	issuer := NewTokenIssuer(Config{Secret: "s3cret", TTL: time.Hour})
	called := false
	h := Middleware(issuer, zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/employee", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}

func TestMiddlewareRejectsBadToken(t *testing.T) {
	issuer := NewTokenIssuer(Config{Secret: "s3cret", TTL: time.Hour})
	h := Middleware(issuer, zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodPost, "/admin/employee", nil)
	req.Header.Set(TokenHeader, "garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
