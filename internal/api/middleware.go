package api

import (
	"context"
	"net/http"
	"tablica-wiadomosci/internal/auth"
)

type contextKey string

const memberContextKey = contextKey("member")

const SessionCookieName = "board_session"

// SessionMiddleware gates everything that requires a signed-in member. An
// anonymous or expired session is sent back to the index page, matching the
// browser flow.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		claims, err := auth.VerifySessionToken(cookie.Value, s.config.Session.Secret)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), memberContextKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetMemberFromContext(ctx context.Context) *auth.SessionClaims {
	if claims, ok := ctx.Value(memberContextKey).(*auth.SessionClaims); ok {
		return claims
	}
	return nil
}
