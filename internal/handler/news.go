package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Apollo297/newsnote/internal/model"
	"github.com/Apollo297/newsnote/internal/service"
	"github.com/Apollo297/newsnote/internal/view"
)

// NewsHandler serves the public pages: the home listing and the news
// detail with its comment thread.
type NewsHandler struct {
	news   *service.NewsService
	users  *service.AuthService
	logger *slog.Logger
}

func NewNewsHandler(news *service.NewsService, users *service.AuthService, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{news: news, users: users, logger: logger}
}

// HandleHome renders the front page listing.
//
// HTTP: GET /
func (h *NewsHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	_, username := identity(r.Context(), h.users)

	items, err := h.news.Home(r.Context())
	if err != nil {
		handleError(w, r, h.logger, username, err)
		return
	}

	render(w, http.StatusOK, view.HomePage(username, items))
}

// HandleDetail renders one news item with its comments. The comment
// form appears only for logged-in readers; the page itself is public.
//
// HTTP: GET /news/{id}
func (h *NewsHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	_, username := identity(r.Context(), h.users)

	id := chi.URLParam(r, "id")
	news, comments, err := h.news.Detail(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, username, err)
		return
	}

	authors := resolveAuthors(r.Context(), h.users, comments)
	render(w, http.StatusOK, view.NewsDetailPage(username, news, comments, authors, nil, nil))
}

// resolveAuthors maps comment author IDs to usernames. Threads are
// short and authors repeat, so a per-request map is enough.
func resolveAuthors(ctx context.Context, users *service.AuthService, comments []model.Comment) map[string]string {
	authors := make(map[string]string)
	for _, c := range comments {
		if _, ok := authors[c.AuthorID]; ok {
			continue
		}
		user, err := users.GetUser(ctx, c.AuthorID)
		if err != nil {
			authors[c.AuthorID] = "?"
			continue
		}
		authors[c.AuthorID] = user.Username
	}
	return authors
}
