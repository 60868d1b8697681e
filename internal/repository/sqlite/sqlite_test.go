package sqlite

import (
	"context"
	"testing"

	"github.com/Apollo297/newsnote/internal/model"
)

// Each test gets its own ":memory:" database — fast, isolated, and gone
// when the connection closes. t.Helper() makes failures report at the
// caller's line.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, PasswordHash: "x"}
	if err := db.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestNews(t *testing.T, db *DB, title string) *model.News {
	t.Helper()
	news := &model.News{Title: title, Text: "Просто текст."}
	if err := db.News.Create(context.Background(), news); err != nil {
		t.Fatalf("failed to create test news: %v", err)
	}
	return news
}

func createTestComment(t *testing.T, db *DB, newsID, authorID, text string) *model.Comment {
	t.Helper()
	comment := &model.Comment{NewsID: newsID, AuthorID: authorID, Text: text}
	if err := db.Comments.Create(context.Background(), comment); err != nil {
		t.Fatalf("failed to create test comment: %v", err)
	}
	return comment
}

func createTestNote(t *testing.T, db *DB, authorID, title, slug string) *model.Note {
	t.Helper()
	note := &model.Note{Title: title, Text: "Текст", Slug: slug, AuthorID: authorID}
	if err := db.Notes.Create(context.Background(), note); err != nil {
		t.Fatalf("failed to create test note: %v", err)
	}
	return note
}

func TestNew_BadPath(t *testing.T) {
	if _, err := New("/nonexistent-dir/never/app.db"); err == nil {
		t.Fatal("New() should fail for an unwritable path")
	}
}
