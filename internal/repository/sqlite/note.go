package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/Apollo297/newsnote/internal/apperror"
	"github.com/Apollo297/newsnote/internal/model"
	"github.com/Apollo297/newsnote/internal/repository"
)

// NoteRepo implements repository.NoteRepository.
type NoteRepo struct {
	conn *sql.DB
}

var _ repository.NoteRepository = (*NoteRepo)(nil)

// Create inserts a note. The UNIQUE constraint on slug is the final
// word on uniqueness; the service checks first to produce a friendly
// field error, this is the backstop against races.
func (r *NoteRepo) Create(ctx context.Context, note *model.Note) error {
	note.ID = xid.New().String()
	note.Created = time.Now()

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO notes (id, title, text, slug, author_id, created)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		note.ID, note.Title, note.Text, note.Slug, note.AuthorID, note.Created,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating note: %w", err)
	}

	return nil
}

// GetBySlug fetches one note. Notes are addressed by slug in URLs, so
// slug, not id, is the lookup key.
func (r *NoteRepo) GetBySlug(ctx context.Context, slug string) (*model.Note, error) {
	var n model.Note
	err := r.conn.QueryRowContext(ctx,
		`SELECT id, title, text, slug, author_id, created FROM notes WHERE slug = ?`,
		slug,
	).Scan(&n.ID, &n.Title, &n.Text, &n.Slug, &n.AuthorID, &n.Created)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("note", slug)
		}
		return nil, fmt.Errorf("sqlite: getting note %s: %w", slug, err)
	}
	return &n, nil
}

// ListByAuthor returns only the given author's notes, oldest first.
// The WHERE clause is the single place cross-user isolation of note
// listings is enforced.
func (r *NoteRepo) ListByAuthor(ctx context.Context, authorID string) ([]model.Note, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, title, text, slug, author_id, created
		 FROM notes
		 WHERE author_id = ?
		 ORDER BY created ASC`,
		authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing notes for author %s: %w", authorID, err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Text, &n.Slug, &n.AuthorID, &n.Created); err != nil {
			return nil, fmt.Errorf("sqlite: scanning note row: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating notes: %w", err)
	}

	return notes, nil
}

// SlugExists reports whether any note, by any author, uses the slug.
func (r *NoteRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int
	err := r.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notes WHERE slug = ?`,
		slug,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("sqlite: checking slug %s: %w", slug, err)
	}
	return count > 0, nil
}

// Update rewrites a note's mutable fields (title, text, slug). The
// author column is deliberately absent from the SET list.
func (r *NoteRepo) Update(ctx context.Context, note *model.Note) error {
	result, err := r.conn.ExecContext(ctx,
		`UPDATE notes SET title = ?, text = ?, slug = ? WHERE id = ?`,
		note.Title, note.Text, note.Slug, note.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating note %s: %w", note.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("note", note.ID)
	}

	return nil
}

// Delete removes a note.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx,
		`DELETE FROM notes WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting note %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("note", id)
	}

	return nil
}
