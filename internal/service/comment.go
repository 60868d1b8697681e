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

// CommentService handles comment creation, editing and deletion.
//
// The rules, in the order they are checked:
//  1. the actor must be authenticated (the middleware guarantees this
//     for HTTP traffic; the service re-checks so it cannot be bypassed)
//  2. the form must validate (required text, banned-word filter)
//  3. for edit/delete, the actor must be the author — otherwise the
//     comment "does not exist"
type CommentService struct {
	comments repository.CommentRepository
	news     repository.NewsRepository
	logger   *slog.Logger
}

func NewCommentService(comments repository.CommentRepository, news repository.NewsRepository, logger *slog.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		news:     news,
		logger:   logger,
	}
}

// Create posts a comment under a news item on behalf of userID. The
// author is always the acting identity — there is no way to submit a
// comment as someone else.
func (s *CommentService) Create(ctx context.Context, newsID, userID string, f *form.CommentForm) (*model.Comment, error) {
	if userID == "" {
		return nil, apperror.Unauthenticated()
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	// The target news must exist; a dangling comment is meaningless.
	if _, err := s.news.GetByID(ctx, newsID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		NewsID:   newsID,
		AuthorID: userID,
		Text:     f.Text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		s.logger.Error("failed to create comment",
			slog.String("newsID", newsID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	s.logger.Info("comment created",
		slog.String("id", comment.ID),
		slog.String("newsID", newsID),
	)

	return comment, nil
}

// GetOwned fetches a comment for its author. Anyone else — including
// other authenticated users — gets NotFound, so the edit and delete
// pages of foreign comments are indistinguishable from missing ones.
func (s *CommentService) GetOwned(ctx context.Context, id, userID string) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownedBy(comment.AuthorID, userID) {
		return nil, apperror.NotFound("comment", id)
	}
	return comment, nil
}

// Edit replaces the text of the actor's own comment. The news and
// author associations are immutable; only text ever changes.
func (s *CommentService) Edit(ctx context.Context, id, userID string, f *form.CommentForm) (*model.Comment, error) {
	comment, err := s.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	if err := s.comments.UpdateText(ctx, id, f.Text); err != nil {
		s.logger.Error("failed to update comment",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating comment: %w", err)
	}

	comment.Text = f.Text
	s.logger.Info("comment updated", slog.String("id", id))
	return comment, nil
}

// Delete removes the actor's own comment and returns the owning news ID
// so the handler can redirect back to the detail page.
func (s *CommentService) Delete(ctx context.Context, id, userID string) (string, error) {
	comment, err := s.GetOwned(ctx, id, userID)
	if err != nil {
		return "", err
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete comment",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("deleting comment: %w", err)
	}

	s.logger.Info("comment deleted", slog.String("id", id))
	return comment.NewsID, nil
}
