package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/Apollo297/newsnote/internal/apperror"
	"github.com/Apollo297/newsnote/internal/model"
)

func TestUserCreateAndGet(t *testing.T) {
	db := newTestDB(t)

	user := &model.User{Username: "Автор", PasswordHash: "$2a$12$fake"}
	if err := db.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == "" {
		t.Error("Create() did not set user.ID")
	}

	byID, err := db.Users.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if byID.Username != "Автор" {
		t.Errorf("Username = %q", byID.Username)
	}

	byName, err := db.Users.GetByUsername(context.Background(), "Автор")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("GetByUsername().ID = %q, want %q", byName.ID, user.ID)
	}
	if byName.PasswordHash != "$2a$12$fake" {
		t.Errorf("PasswordHash = %q, want stored hash", byName.PasswordHash)
	}
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "Автор")

	err := db.Users.Create(context.Background(), &model.User{
		Username:     "Автор",
		PasswordHash: "y",
	})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("Create() duplicate = %v, want ErrConflict", err)
	}
}

func TestUserGet_NotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Users.GetByID(context.Background(), "missing"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() = %v, want ErrNotFound", err)
	}
	if _, err := db.Users.GetByUsername(context.Background(), "missing"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByUsername() = %v, want ErrNotFound", err)
	}
}
