package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Apollo297/newsnote/internal/apperror"
	"github.com/Apollo297/newsnote/internal/form"
	"github.com/Apollo297/newsnote/internal/model"
	"github.com/Apollo297/newsnote/internal/repository"
)

// NoteService handles the fully private notes area. Every operation
// takes the acting identity; the listing is scoped to it and everything
// else is gated by the ownership predicate.
type NoteService struct {
	notes  repository.NoteRepository
	logger *slog.Logger
}

func NewNoteService(notes repository.NoteRepository, logger *slog.Logger) *NoteService {
	return &NoteService{notes: notes, logger: logger}
}

// ListFor returns the actor's own notes and nothing else.
func (s *NoteService) ListFor(ctx context.Context, userID string) ([]model.Note, error) {
	if userID == "" {
		return nil, apperror.Unauthenticated()
	}

	notes, err := s.notes.ListByAuthor(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list notes", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

// GetOwned fetches a note for its author; any other identity gets
// NotFound. The detail page, edit page and delete page all start here.
func (s *NoteService) GetOwned(ctx context.Context, slug, userID string) (*model.Note, error) {
	note, err := s.notes.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !ownedBy(note.AuthorID, userID) {
		return nil, apperror.NotFound("note", slug)
	}
	return note, nil
}

// Create validates the form, resolves the slug (supplied or derived
// from the title) and stores the note. The author is always the acting
// identity regardless of the submitted data.
func (s *NoteService) Create(ctx context.Context, userID string, f *form.NoteForm) (*model.Note, error) {
	if userID == "" {
		return nil, apperror.Unauthenticated()
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	slug := f.SlugOrDerived()
	if slug == "" {
		// a title of only punctuation transliterates to nothing
		return nil, apperror.ValidationFailed("slug", "Не удалось получить slug из заголовка.")
	}

	if err := s.ensureSlugFree(ctx, slug); err != nil {
		return nil, err
	}

	note := &model.Note{
		Title:    f.Title,
		Text:     f.Text,
		Slug:     slug,
		AuthorID: userID,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		s.logger.Error("failed to create note",
			slog.String("slug", slug),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating note: %w", err)
	}

	s.logger.Info("note created", slog.String("id", note.ID), slog.String("slug", slug))
	return note, nil
}

// Update edits the actor's own note. Title, text and slug may change;
// the author may not. A slug change is checked for uniqueness like a
// fresh one.
func (s *NoteService) Update(ctx context.Context, slug, userID string, f *form.NoteForm) (*model.Note, error) {
	note, err := s.GetOwned(ctx, slug, userID)
	if err != nil {
		return nil, err
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	newSlug := f.SlugOrDerived()
	if newSlug == "" {
		return nil, apperror.ValidationFailed("slug", "Не удалось получить slug из заголовка.")
	}
	if newSlug != note.Slug {
		if err := s.ensureSlugFree(ctx, newSlug); err != nil {
			return nil, err
		}
	}

	note.Title = f.Title
	note.Text = f.Text
	note.Slug = newSlug

	if err := s.notes.Update(ctx, note); err != nil {
		s.logger.Error("failed to update note",
			slog.String("id", note.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating note: %w", err)
	}

	s.logger.Info("note updated", slog.String("id", note.ID))
	return note, nil
}

// Delete removes the actor's own note.
func (s *NoteService) Delete(ctx context.Context, slug, userID string) error {
	note, err := s.GetOwned(ctx, slug, userID)
	if err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, note.ID); err != nil {
		s.logger.Error("failed to delete note",
			slog.String("id", note.ID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("deleting note: %w", err)
	}

	s.logger.Info("note deleted", slog.String("id", note.ID))
	return nil
}

// ensureSlugFree turns a taken slug into the field error the add/edit
// page shows: the conflicting slug with the fixed warning appended.
func (s *NoteService) ensureSlugFree(ctx context.Context, slug string) error {
	exists, err := s.notes.SlugExists(ctx, slug)
	if err != nil {
		return fmt.Errorf("checking slug: %w", err)
	}
	if exists {
		return apperror.ValidationFailed("slug", slug+form.SlugWarning)
	}
	return nil
}
