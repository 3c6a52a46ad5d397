package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/Amarie1212/ppmnurulhakim/internal/authz"
	"github.com/Amarie1212/ppmnurulhakim/internal/logger"
	"github.com/Amarie1212/ppmnurulhakim/internal/security"
)

type contextKey string

const claimsKey contextKey = "session_claims"

// claimsFrom pulls the authenticated session out of the request context.
// It is only valid downstream of Authenticate.
func claimsFrom(r *http.Request) *security.SessionClaims {
	claims, _ := r.Context().Value(claimsKey).(*security.SessionClaims)
	return claims
}

// Authenticate validates the bearer token and stashes its claims on the
// request context. Refresh tokens are rejected here; they are only good
// for the refresh endpoint.
func Authenticate(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeServiceError(w, security.ErrWrongTokenType)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireApplicant rejects staff sessions on applicant-only routes.
func RequireApplicant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r)
		if claims == nil || claims.Kind != security.PrincipalApplicant {
			writeJSON(w, http.StatusForbidden, errorBody{Error: "applicant session required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAction gates a staff route on the policy table. A staff member
// with the wrong role is redirected to their own landing page rather than
// shown a bare 403, matching how the panels link to each other.
func RequireAction(action authz.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFrom(r)
			if claims == nil || claims.Kind != security.PrincipalStaff {
				writeJSON(w, http.StatusForbidden, errorBody{Error: "staff session required"})
				return
			}
			if !authz.Authorize(claims.Role, action) {
				logger.Info("action denied", "role", claims.Role, "action", action, "staff_id", claims.UserID)
				http.Redirect(w, r, authz.RedirectTarget(claims.Role), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
