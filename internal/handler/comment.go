package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Apollo297/newsnote/internal/form"
	"github.com/Apollo297/newsnote/internal/service"
	"github.com/Apollo297/newsnote/internal/view"
)

// CommentHandler covers the comment write paths. Every route here sits
// behind RequireLogin; the handlers still re-check the identity because
// ownership lives in the service layer, not in the router.
type CommentHandler struct {
	comments *service.CommentService
	news     *service.NewsService
	users    *service.AuthService
	logger   *slog.Logger
}

func NewCommentHandler(comments *service.CommentService, news *service.NewsService, users *service.AuthService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, news: news, users: users, logger: logger}
}

// HandleCreate adds a comment and sends the author back to the thread.
// A validation failure re-renders the detail page with the message on
// the text field and the submitted text preserved.
//
// HTTP: POST /news/{id}/comments
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)
	newsID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		render(w, http.StatusBadRequest, view.ErrorPage(username))
		return
	}
	f := form.ParseCommentForm(r.PostForm)

	comment, err := h.comments.Create(r.Context(), newsID, userID, f)
	if err != nil {
		if errs := formErrors(err); errs != nil {
			news, comments, derr := h.news.Detail(r.Context(), newsID)
			if derr != nil {
				handleError(w, r, h.logger, username, derr)
				return
			}
			authors := resolveAuthors(r.Context(), h.users, comments)
			render(w, http.StatusOK, view.NewsDetailPage(username, news, comments, authors, f, errs))
			return
		}
		handleError(w, r, h.logger, username, err)
		return
	}

	http.Redirect(w, r, "/news/"+comment.NewsID+"#comments", http.StatusFound)
}

// HandleEditForm shows the edit form, pre-filled with the current text.
// Someone else's comment is a 404, same as a missing one.
//
// HTTP: GET /comments/{id}/edit
func (h *CommentHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)

	comment, err := h.comments.GetOwned(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		handleError(w, r, h.logger, username, err)
		return
	}

	f := &form.CommentForm{Text: comment.Text}
	render(w, http.StatusOK, view.CommentEditPage(username, comment, f, nil))
}

// HandleEdit applies the new text and returns to the thread.
//
// HTTP: POST /comments/{id}/edit
func (h *CommentHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		render(w, http.StatusBadRequest, view.ErrorPage(username))
		return
	}
	f := form.ParseCommentForm(r.PostForm)

	comment, err := h.comments.Edit(r.Context(), id, userID, f)
	if err != nil {
		if errs := formErrors(err); errs != nil {
			current, gerr := h.comments.GetOwned(r.Context(), id, userID)
			if gerr != nil {
				handleError(w, r, h.logger, username, gerr)
				return
			}
			render(w, http.StatusOK, view.CommentEditPage(username, current, f, errs))
			return
		}
		handleError(w, r, h.logger, username, err)
		return
	}

	http.Redirect(w, r, "/news/"+comment.NewsID+"#comments", http.StatusFound)
}

// HandleDeleteForm shows the confirmation page.
//
// HTTP: GET /comments/{id}/delete
func (h *CommentHandler) HandleDeleteForm(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)

	comment, err := h.comments.GetOwned(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		handleError(w, r, h.logger, username, err)
		return
	}

	render(w, http.StatusOK, view.CommentDeletePage(username, comment))
}

// HandleDelete removes the comment and returns to the thread it was on.
//
// HTTP: POST /comments/{id}/delete
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)

	newsID, err := h.comments.Delete(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		handleError(w, r, h.logger, username, err)
		return
	}

	http.Redirect(w, r, "/news/"+newsID+"#comments", http.StatusFound)
}
