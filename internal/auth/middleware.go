package auth

import (
	"context"
	"net/http"
	"net/url"
)

// contextKey is an unexported type for context keys in this package.
// Using a private type (not a bare string) means no other package can
// read or shadow the userID value we store in the request context.
type contextKey string

const userIDKey contextKey = "userID"

// LoginPath is where unauthenticated visitors are sent. The original
// target URL travels in the "next" query parameter so the login handler
// can return the user to where they were going.
const LoginPath = "/auth/login"

// RequireLogin protects a route for browser traffic.
//
// Unlike an API middleware that would answer 401, a page middleware
// redirects: the visitor is sent to the login form with ?next=<original
// URL> and can recover by signing in. This is deliberately different
// from the ownership checks deeper in the stack, which answer 404 —
// "not logged in" is recoverable, "not yours" must look like "does not
// exist".
func RequireLogin(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessionUserID(r, tokens)
			if err != nil {
				RedirectToLogin(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalLogin attaches the user identity when a valid session cookie
// is present but never blocks the request. Public pages use it: the
// news detail page is readable by anyone, yet shows the comment form
// only to authenticated visitors.
func OptionalLogin(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, err := sessionUserID(r, tokens); err == nil && userID != "" {
				ctx := context.WithValue(r.Context(), userIDKey, userID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectToLogin sends the browser to the login form, carrying the
// originally requested URL in "next".
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	q := url.Values{"next": {r.URL.RequestURI()}}
	http.Redirect(w, r, LoginPath+"?"+q.Encode(), http.StatusFound)
}

// UserIDFromContext retrieves the authenticated user's ID.
// Returns ("", false) for anonymous requests.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// sessionUserID reads the session cookie and validates the JWT inside.
func sessionUserID(r *http.Request, tokens *TokenService) (string, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		// http.ErrNoCookie: no session at all — anonymous visitor
		return "", err
	}
	return tokens.Validate(cookie.Value)
}
