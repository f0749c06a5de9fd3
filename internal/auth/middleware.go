package auth

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mealflow/takeout-admin/pkg/result"
)

// TokenHeader is the request header carrying the admin token.
const TokenHeader = "token"

// Middleware verifies the admin token and threads the actor id through the
// request context. Requests without a valid token are rejected with 401.
func Middleware(issuer *TokenIssuer, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				result.FailStatus(w, http.StatusUnauthorized, "missing token")
				return
			}
			empID, err := issuer.Parse(token)
			if err != nil {
				logger.Debugw("token rejected", "path", r.URL.Path, "err", err)
				result.FailStatus(w, http.StatusUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActorID(r.Context(), empID)))
		})
	}
}
