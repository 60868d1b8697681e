package handler

import (
	"log/slog"
	"net/http"

	"github.com/Apollo297/newsnote/internal/auth"
	"github.com/Apollo297/newsnote/internal/form"
	"github.com/Apollo297/newsnote/internal/service"
	"github.com/Apollo297/newsnote/internal/view"
)

// AuthHandler owns the session lifecycle: signup, login, logout. The
// session is a JWT in an HttpOnly cookie; these are the only handlers
// that set or clear it.
type AuthHandler struct {
	auth   *service.AuthService
	tokens *auth.TokenService
	logger *slog.Logger
}

func NewAuthHandler(authSvc *service.AuthService, tokens *auth.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: authSvc, tokens: tokens, logger: logger}
}

// HandleLoginForm shows the login page. A next parameter placed there
// by RequireLogin is carried into the form so the destination survives
// the POST.
//
// HTTP: GET /auth/login
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")
	render(w, http.StatusOK, view.LoginPage(nil, next, nil))
}

// HandleLogin checks credentials, opens a session and redirects to the
// page the visitor originally wanted, or home.
//
// HTTP: POST /auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, http.StatusBadRequest, view.ErrorPage(""))
		return
	}
	f := form.ParseLoginForm(r.PostForm)
	next := r.PostForm.Get("next")

	user, err := h.auth.Login(r.Context(), f)
	if err != nil {
		if errs := formErrors(err); errs != nil {
			render(w, http.StatusOK, view.LoginPage(f, next, errs))
			return
		}
		handleError(w, r, h.logger, "", err)
		return
	}

	if err := h.openSession(w, user.ID); err != nil {
		h.logger.Error("failed to open session", slog.String("error", err.Error()))
		render(w, http.StatusInternalServerError, view.ErrorPage(""))
		return
	}

	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

// HandleSignupForm shows the registration page.
//
// HTTP: GET /auth/signup
func (h *AuthHandler) HandleSignupForm(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, view.SignupPage(nil, nil))
}

// HandleSignup registers the account and logs it straight in.
//
// HTTP: POST /auth/signup
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, http.StatusBadRequest, view.ErrorPage(""))
		return
	}
	f := form.ParseSignupForm(r.PostForm)

	user, err := h.auth.Signup(r.Context(), f)
	if err != nil {
		if errs := formErrors(err); errs != nil {
			render(w, http.StatusOK, view.SignupPage(f, errs))
			return
		}
		handleError(w, r, h.logger, "", err)
		return
	}

	if err := h.openSession(w, user.ID); err != nil {
		h.logger.Error("failed to open session", slog.String("error", err.Error()))
		render(w, http.StatusInternalServerError, view.ErrorPage(""))
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleLogout clears the session cookie and confirms.
//
// HTTP: GET /auth/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	render(w, http.StatusOK, view.LogoutPage())
}

func (h *AuthHandler) openSession(w http.ResponseWriter, userID string) error {
	token, err := h.tokens.Generate(userID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
