package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Apollo297/newsnote/internal/form"
	"github.com/Apollo297/newsnote/internal/service"
	"github.com/Apollo297/newsnote/internal/view"
)

// NoteHandler serves the private notes area. All routes sit behind
// RequireLogin; the slug routes additionally resolve ownership through
// the service, so a foreign slug renders the same 404 as a missing one.
type NoteHandler struct {
	notes  *service.NoteService
	users  *service.AuthService
	logger *slog.Logger
}

func NewNoteHandler(notes *service.NoteService, users *service.AuthService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, users: users, logger: logger}
}

// HandleLanding renders the notes entry page.
//
// HTTP: GET /notes
func (h *NoteHandler) HandleLanding(w http.ResponseWriter, r *http.Request) {
	_, username := identity(r.Context(), h.users)
	render(w, http.StatusOK, view.NotesLandingPage(username))
}

// HandleList shows the actor's own notes.
//
// HTTP: GET /notes/list
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)

	notes, err := h.notes.ListFor(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, username, err)
		return
	}

	render(w, http.StatusOK, view.NotesListPage(username, notes))
}

// HandleAddForm shows an empty note form.
//
// HTTP: GET /notes/add
func (h *NoteHandler) HandleAddForm(w http.ResponseWriter, r *http.Request) {
	_, username := identity(r.Context(), h.users)
	render(w, http.StatusOK, view.NoteFormPage(username, "Добавить заметку", "/notes/add", nil, nil))
}

// HandleAdd creates the note. A validation failure, including a taken
// slug, re-renders the form with the submitted values intact.
//
// HTTP: POST /notes/add
func (h *NoteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)

	if err := r.ParseForm(); err != nil {
		render(w, http.StatusBadRequest, view.ErrorPage(username))
		return
	}
	f := form.ParseNoteForm(r.PostForm)

	if _, err := h.notes.Create(r.Context(), userID, f); err != nil {
		if errs := formErrors(err); errs != nil {
			render(w, http.StatusOK, view.NoteFormPage(username, "Добавить заметку", "/notes/add", f, errs))
			return
		}
		handleError(w, r, h.logger, username, err)
		return
	}

	http.Redirect(w, r, "/notes/success", http.StatusFound)
}

// HandleSuccess is the shared landing page after create, edit and
// delete.
//
// HTTP: GET /notes/success
func (h *NoteHandler) HandleSuccess(w http.ResponseWriter, r *http.Request) {
	_, username := identity(r.Context(), h.users)
	render(w, http.StatusOK, view.NoteSuccessPage(username))
}

// HandleDetail shows one of the actor's notes.
//
// HTTP: GET /notes/{slug}
func (h *NoteHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)

	note, err := h.notes.GetOwned(r.Context(), chi.URLParam(r, "slug"), userID)
	if err != nil {
		handleError(w, r, h.logger, username, err)
		return
	}

	render(w, http.StatusOK, view.NoteDetailPage(username, note))
}

// HandleEditForm shows the form pre-filled with the stored note.
//
// HTTP: GET /notes/{slug}/edit
func (h *NoteHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)
	slug := chi.URLParam(r, "slug")

	note, err := h.notes.GetOwned(r.Context(), slug, userID)
	if err != nil {
		handleError(w, r, h.logger, username, err)
		return
	}

	f := &form.NoteForm{Title: note.Title, Text: note.Text, Slug: note.Slug}
	render(w, http.StatusOK, view.NoteFormPage(username, "Редактировать заметку", "/notes/"+slug+"/edit", f, nil))
}

// HandleEdit applies the changes.
//
// HTTP: POST /notes/{slug}/edit
func (h *NoteHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)
	slug := chi.URLParam(r, "slug")

	if err := r.ParseForm(); err != nil {
		render(w, http.StatusBadRequest, view.ErrorPage(username))
		return
	}
	f := form.ParseNoteForm(r.PostForm)

	if _, err := h.notes.Update(r.Context(), slug, userID, f); err != nil {
		if errs := formErrors(err); errs != nil {
			render(w, http.StatusOK, view.NoteFormPage(username, "Редактировать заметку", "/notes/"+slug+"/edit", f, errs))
			return
		}
		handleError(w, r, h.logger, username, err)
		return
	}

	http.Redirect(w, r, "/notes/success", http.StatusFound)
}

// HandleDeleteForm shows the confirmation page.
//
// HTTP: GET /notes/{slug}/delete
func (h *NoteHandler) HandleDeleteForm(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)

	note, err := h.notes.GetOwned(r.Context(), chi.URLParam(r, "slug"), userID)
	if err != nil {
		handleError(w, r, h.logger, username, err)
		return
	}

	render(w, http.StatusOK, view.NoteDeletePage(username, note))
}

// HandleDelete removes the note.
//
// HTTP: POST /notes/{slug}/delete
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, username := identity(r.Context(), h.users)

	if err := h.notes.Delete(r.Context(), chi.URLParam(r, "slug"), userID); err != nil {
		handleError(w, r, h.logger, username, err)
		return
	}

	http.Redirect(w, r, "/notes/success", http.StatusFound)
}
