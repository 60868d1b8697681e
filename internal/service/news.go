// Package service contains the business logic layer.
//
// Handlers parse HTTP and render pages; services enforce the rules
// (ownership, validation, listing caps) against repository interfaces;
// repositories talk SQL. Services accept primitives and form structs,
// never *http.Request, and return domain errors from internal/apperror,
// never status codes.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Apollo297/newsnote/internal/model"
	"github.com/Apollo297/newsnote/internal/repository"
)

// NewsService serves the public news pages. News is read-only through
// the site; the only write path is demo seeding at startup.
type NewsService struct {
	news     repository.NewsRepository
	comments repository.CommentRepository
	pageSize int
	logger   *slog.Logger
}

// NewNewsService creates a NewsService. pageSize caps the home listing.
func NewNewsService(news repository.NewsRepository, comments repository.CommentRepository, pageSize int, logger *slog.Logger) *NewsService {
	return &NewsService{
		news:     news,
		comments: comments,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Home returns the home-page listing: at most pageSize items, newest
// date first. The cap and the ordering both live in the repository
// query; this method exists so handlers never choose a limit.
func (s *NewsService) Home(ctx context.Context) ([]model.News, error) {
	items, err := s.news.ListRecent(ctx, s.pageSize)
	if err != nil {
		s.logger.Error("failed to list news", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing news: %w", err)
	}
	return items, nil
}

// Detail returns one news item together with its comments, oldest
// comment first. Anyone may read a detail page; authentication only
// affects whether the comment form is rendered, which is the handler's
// concern.
func (s *NewsService) Detail(ctx context.Context, id string) (*model.News, []model.Comment, error) {
	news, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.comments.ListByNews(ctx, id)
	if err != nil {
		s.logger.Error("failed to list comments",
			slog.String("newsID", id),
			slog.String("error", err.Error()),
		)
		return nil, nil, fmt.Errorf("listing comments: %w", err)
	}

	return news, comments, nil
}

// SeedDemo inserts a handful of sample news items if the table is
// empty. Used on first start so a fresh install has something to show.
func (s *NewsService) SeedDemo(ctx context.Context) error {
	count, err := s.news.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting news: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []model.News{
		{Title: "Добро пожаловать", Text: "Первая новость на сайте."},
		{Title: "Как оставлять комментарии", Text: "Войдите, чтобы обсудить новость."},
	}
	for i := range samples {
		if err := s.news.Create(ctx, &samples[i]); err != nil {
			return fmt.Errorf("seeding news: %w", err)
		}
	}

	s.logger.Info("seeded demo news", slog.Int("count", len(samples)))
	return nil
}
