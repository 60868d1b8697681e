// Package repository declares the storage interfaces the service layer
// programs against. The sqlite subpackage is the only implementation;
// tests substitute in-memory fakes.
package repository

import (
	"context"

	"github.com/Apollo297/newsnote/internal/model"
)

// NewsRepository stores news items. News has no mutation surface beyond
// Create (used by seeding and tests) — items are never edited through
// the site.
type NewsRepository interface {
	Create(ctx context.Context, news *model.News) error
	GetByID(ctx context.Context, id string) (*model.News, error)
	// ListRecent returns at most limit items, ordered by date descending.
	ListRecent(ctx context.Context, limit int) ([]model.News, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository stores comments under news items.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	// ListByNews returns the comments of one news item, ordered by
	// created ascending (oldest first).
	ListByNews(ctx context.Context, newsID string) ([]model.Comment, error)
	// UpdateText changes a comment's text. NewsID and AuthorID are
	// immutable and deliberately have no update path.
	UpdateText(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
}

// NoteRepository stores per-user notes addressed by slug.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	GetBySlug(ctx context.Context, slug string) (*model.Note, error)
	// ListByAuthor returns only the given author's notes.
	ListByAuthor(ctx context.Context, authorID string) ([]model.Note, error)
	// SlugExists reports whether any note (any author) uses the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, id string) error
}

// UserRepository stores accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
