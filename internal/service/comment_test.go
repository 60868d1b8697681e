package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/Apollo297/newsnote/internal/apperror"
	"github.com/Apollo297/newsnote/internal/form"
)

func newTestCommentService(t *testing.T) (*CommentService, *mockCommentRepo, *mockNewsRepo) {
	t.Helper()
	comments := newMockCommentRepo()
	news := newMockNewsRepo()
	svc := NewCommentService(comments, news, testLogger())
	return svc, comments, news
}

func commentForm(text string) *form.CommentForm {
	return form.ParseCommentForm(url.Values{"text": {text}})
}

func TestCommentCreate_Success(t *testing.T) {
	svc, repo, newsRepo := newTestCommentService(t)
	news := mustCreateNews(t, newsRepo, "Заголовок")

	comment, err := svc.Create(context.Background(), news.ID, "user-1", commentForm("Текст комментария"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if comment.Text != "Текст комментария" {
		t.Errorf("Text = %q", comment.Text)
	}
	if comment.AuthorID != "user-1" {
		t.Errorf("AuthorID = %q, want acting identity", comment.AuthorID)
	}
	if comment.NewsID != news.ID {
		t.Errorf("NewsID = %q, want %q", comment.NewsID, news.ID)
	}
	if repo.created != 1 {
		t.Errorf("repo.created = %d, want 1", repo.created)
	}
}

func TestCommentCreate_AnonymousRejected(t *testing.T) {
	svc, repo, newsRepo := newTestCommentService(t)
	news := mustCreateNews(t, newsRepo, "Заголовок")

	_, err := svc.Create(context.Background(), news.ID, "", commentForm("Текст"))
	if !errors.Is(err, apperror.ErrUnauthenticated) {
		t.Fatalf("Create() = %v, want ErrUnauthenticated", err)
	}
	if repo.created != 0 {
		t.Error("anonymous create touched the store")
	}
}

func TestCommentCreate_BadWordsNoSideEffect(t *testing.T) {
	svc, repo, newsRepo := newTestCommentService(t)
	news := mustCreateNews(t, newsRepo, "Заголовок")

	for _, word := range form.BadWords {
		_, err := svc.Create(context.Background(), news.ID, "user-1",
			commentForm("Какой-то текст, "+word+", еще текст"))
		if !errors.Is(err, apperror.ErrValidation) {
			t.Fatalf("Create() = %v, want validation error", err)
		}
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Field != "text" || appErr.Message != form.BadWordsWarning {
			t.Errorf("got %v, want %q on text", err, form.BadWordsWarning)
		}
	}
	if repo.created != 0 {
		t.Errorf("repo.created = %d after rejected submissions, want 0", repo.created)
	}
}

func TestCommentCreate_UnknownNews(t *testing.T) {
	svc, repo, _ := newTestCommentService(t)

	_, err := svc.Create(context.Background(), "no-such-news", "user-1", commentForm("Текст"))
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("Create() = %v, want ErrNotFound", err)
	}
	if repo.created != 0 {
		t.Error("create against unknown news touched the store")
	}
}

func TestCommentEdit_AuthorOnly(t *testing.T) {
	svc, _, newsRepo := newTestCommentService(t)
	news := mustCreateNews(t, newsRepo, "Заголовок")

	created, err := svc.Create(context.Background(), news.ID, "author", commentForm("Какой-то текст"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// The author may edit; only the text changes.
	edited, err := svc.Edit(context.Background(), created.ID, "author", commentForm("Текст комментария"))
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if edited.Text != "Текст комментария" {
		t.Errorf("Text = %q", edited.Text)
	}
	if edited.NewsID != news.ID || edited.AuthorID != "author" {
		t.Error("Edit() changed the news/author associations")
	}
}

func TestCommentEdit_OtherUserGetsNotFound(t *testing.T) {
	svc, repo, newsRepo := newTestCommentService(t)
	news := mustCreateNews(t, newsRepo, "Заголовок")

	created, err := svc.Create(context.Background(), news.ID, "author", commentForm("Какой-то текст"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = svc.Edit(context.Background(), created.ID, "reader", commentForm("Другой текст"))
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("Edit() by non-author = %v, want ErrNotFound (never Forbidden)", err)
	}

	// record unchanged
	stored, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.Text != "Какой-то текст" {
		t.Errorf("Text = %q, want untouched original", stored.Text)
	}
}

func TestCommentDelete_AuthorOnly(t *testing.T) {
	svc, repo, newsRepo := newTestCommentService(t)
	news := mustCreateNews(t, newsRepo, "Заголовок")

	created, err := svc.Create(context.Background(), news.ID, "author", commentForm("Какой-то текст"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Non-author first: NotFound, record stays.
	if _, err := svc.Delete(context.Background(), created.ID, "reader"); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("Delete() by non-author = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID(context.Background(), created.ID); err != nil {
		t.Fatal("non-author delete removed the record")
	}

	// Author: deleted, and the owning news ID comes back for redirect.
	newsID, err := svc.Delete(context.Background(), created.ID, "author")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if newsID != news.ID {
		t.Errorf("Delete() newsID = %q, want %q", newsID, news.ID)
	}
	if _, err := repo.GetByID(context.Background(), created.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Error("record still present after author delete")
	}
}

func TestCommentGetOwned(t *testing.T) {
	svc, _, newsRepo := newTestCommentService(t)
	news := mustCreateNews(t, newsRepo, "Заголовок")

	created, err := svc.Create(context.Background(), news.ID, "author", commentForm("Какой-то текст"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.GetOwned(context.Background(), created.ID, "author"); err != nil {
		t.Errorf("GetOwned() by author: %v", err)
	}
	if _, err := svc.GetOwned(context.Background(), created.ID, "reader"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetOwned() by non-author = %v, want ErrNotFound", err)
	}
}
