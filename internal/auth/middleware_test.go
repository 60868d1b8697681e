package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// okHandler records whether it ran and what user it saw.
type okHandler struct {
	called bool
	userID string
	authed bool
}

func (h *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.userID, h.authed = UserIDFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func TestRequireLogin_AnonymousRedirectsWithNext(t *testing.T) {
	ts := newTestTokenService(t)
	inner := &okHandler{}
	protected := RequireLogin(ts)(inner)

	req := httptest.NewRequest(http.MethodGet, "/notes/list", nil)
	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req)

	if inner.called {
		t.Error("protected handler ran for an anonymous request")
	}
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}

	loc, err := rr.Result().Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc.Path != LoginPath {
		t.Errorf("redirect path = %q, want %q", loc.Path, LoginPath)
	}
	if got := loc.Query().Get("next"); got != "/notes/list" {
		t.Errorf("next = %q, want %q", got, "/notes/list")
	}
}

func TestRequireLogin_BadTokenRedirects(t *testing.T) {
	ts := newTestTokenService(t)
	inner := &okHandler{}
	protected := RequireLogin(ts)(inner)

	req := httptest.NewRequest(http.MethodGet, "/notes/add", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "forged"})
	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if inner.called {
		t.Error("protected handler ran with a forged cookie")
	}
}

func TestRequireLogin_ValidSessionPassesUserID(t *testing.T) {
	ts := newTestTokenService(t)
	inner := &okHandler{}
	protected := RequireLogin(ts)(inner)

	token, err := ts.Generate("user-42")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/notes/list", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !inner.authed || inner.userID != "user-42" {
		t.Errorf("handler saw userID=%q authed=%v, want user-42/true", inner.userID, inner.authed)
	}
}

func TestOptionalLogin_AnonymousStillServed(t *testing.T) {
	ts := newTestTokenService(t)
	inner := &okHandler{}
	public := OptionalLogin(ts)(inner)

	req := httptest.NewRequest(http.MethodGet, "/news/abc", nil)
	rr := httptest.NewRecorder()
	public.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !inner.called {
		t.Fatal("public handler did not run")
	}
	if inner.authed {
		t.Error("anonymous request should not carry a user identity")
	}
}

func TestOptionalLogin_AuthenticatedIdentityAttached(t *testing.T) {
	ts := newTestTokenService(t)
	inner := &okHandler{}
	public := OptionalLogin(ts)(inner)

	token, err := ts.Generate("user-7")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/news/abc", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rr := httptest.NewRecorder()
	public.ServeHTTP(rr, req)

	if !inner.authed || inner.userID != "user-7" {
		t.Errorf("handler saw userID=%q authed=%v, want user-7/true", inner.userID, inner.authed)
	}
}
