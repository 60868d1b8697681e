// Package handler translates HTTP to service calls and renders pages.
//
// The error mapping is deliberate and asymmetric: a missing or
// foreign resource is a 404 page, an anonymous request to a protected
// action is a redirect to login, and a validation failure re-renders
// the form with the message attached to its field. Services never see
// status codes and handlers never see SQL.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	g "github.com/maragudk/gomponents"

	"github.com/Apollo297/newsnote/internal/apperror"
	"github.com/Apollo297/newsnote/internal/auth"
	"github.com/Apollo297/newsnote/internal/service"
	"github.com/Apollo297/newsnote/internal/view"
)

// render streams a page. Headers are written before the body, so a
// render failure midway can only be logged.
func render(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		slog.Error("failed to render page", slog.String("error", err.Error()))
	}
}

// handleError maps a service error onto the response. Validation
// errors never reach here; the call sites catch them to re-render
// their own form.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, username string, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		render(w, http.StatusNotFound, view.NotFoundPage(username))
	case errors.Is(err, apperror.ErrUnauthenticated):
		auth.RedirectToLogin(w, r)
	default:
		logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		render(w, http.StatusInternalServerError, view.ErrorPage(username))
	}
}

// formErrors turns a validation error into the field→message map the
// views consume. Non-validation errors yield nil: a NotFound or an
// Unauthenticated must reach handleError and keep its status, not get
// painted onto the form as a message.
func formErrors(err error) map[string]string {
	if !errors.Is(err, apperror.ErrValidation) {
		return nil
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return nil
	}
	return map[string]string{appErr.Field: appErr.Message}
}

// identity resolves the session into (userID, username). Both are
// empty for anonymous visitors. A stale session pointing at a deleted
// account is treated as anonymous rather than an error.
func identity(ctx context.Context, users *service.AuthService) (string, string) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", ""
	}
	user, err := users.GetUser(ctx, userID)
	if err != nil {
		return "", ""
	}
	return userID, user.Username
}

// safeNext accepts only site-local redirect targets. Anything absolute
// or scheme-relative falls back to the home page.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
