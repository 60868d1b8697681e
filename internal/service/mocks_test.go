package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"testing"

	"github.com/Apollo297/newsnote/internal/apperror"
	"github.com/Apollo297/newsnote/internal/model"
	"github.com/Apollo297/newsnote/internal/repository"
)

// Hand-written in-memory fakes. The services only see the repository
// interfaces, so swapping SQLite for a map is exactly the dependency
// injection the constructors were built for. Stored values are copied
// on the way in and out so a test can't accidentally mutate the "rows".

type mockNewsRepo struct {
	items  map[string]*model.News
	nextID int
}

func newMockNewsRepo() *mockNewsRepo {
	return &mockNewsRepo{items: make(map[string]*model.News)}
}

func (m *mockNewsRepo) Create(_ context.Context, news *model.News) error {
	m.nextID++
	news.ID = fmt.Sprintf("news-%d", m.nextID)
	stored := *news
	m.items[news.ID] = &stored
	return nil
}

func (m *mockNewsRepo) GetByID(_ context.Context, id string) (*model.News, error) {
	n, ok := m.items[id]
	if !ok {
		return nil, apperror.NotFound("news", id)
	}
	result := *n
	return &result, nil
}

func (m *mockNewsRepo) ListRecent(_ context.Context, limit int) ([]model.News, error) {
	all := make([]model.News, 0, len(m.items))
	for _, n := range m.items {
		all = append(all, *n)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *mockNewsRepo) Count(_ context.Context) (int, error) {
	return len(m.items), nil
}

type mockCommentRepo struct {
	comments map[string]*model.Comment
	nextID   int
	created  int // Create calls, mutations included for "no side effect" checks
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[string]*model.Comment)}
}

func (m *mockCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	m.nextID++
	m.created++
	comment.ID = fmt.Sprintf("comment-%d", m.nextID)
	stored := *comment
	m.comments[comment.ID] = &stored
	return nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, id string) (*model.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, apperror.NotFound("comment", id)
	}
	result := *c
	return &result, nil
}

func (m *mockCommentRepo) ListByNews(_ context.Context, newsID string) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range m.comments {
		if c.NewsID == newsID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out, nil
}

func (m *mockCommentRepo) UpdateText(_ context.Context, id, text string) error {
	c, ok := m.comments[id]
	if !ok {
		return apperror.NotFound("comment", id)
	}
	c.Text = text
	return nil
}

func (m *mockCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.comments[id]; !ok {
		return apperror.NotFound("comment", id)
	}
	delete(m.comments, id)
	return nil
}

type mockNoteRepo struct {
	notes  map[string]*model.Note // keyed by slug
	nextID int
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: make(map[string]*model.Note)}
}

func (m *mockNoteRepo) Create(_ context.Context, note *model.Note) error {
	if _, ok := m.notes[note.Slug]; ok {
		return fmt.Errorf("mock: UNIQUE constraint failed: notes.slug")
	}
	m.nextID++
	note.ID = fmt.Sprintf("note-%d", m.nextID)
	stored := *note
	m.notes[note.Slug] = &stored
	return nil
}

func (m *mockNoteRepo) GetBySlug(_ context.Context, slug string) (*model.Note, error) {
	n, ok := m.notes[slug]
	if !ok {
		return nil, apperror.NotFound("note", slug)
	}
	result := *n
	return &result, nil
}

func (m *mockNoteRepo) ListByAuthor(_ context.Context, authorID string) ([]model.Note, error) {
	var out []model.Note
	for _, n := range m.notes {
		if n.AuthorID == authorID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockNoteRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	_, ok := m.notes[slug]
	return ok, nil
}

func (m *mockNoteRepo) Update(_ context.Context, note *model.Note) error {
	for slug, n := range m.notes {
		if n.ID == note.ID {
			delete(m.notes, slug)
			stored := *note
			stored.AuthorID = n.AuthorID // author column is never written
			m.notes[note.Slug] = &stored
			return nil
		}
	}
	return apperror.NotFound("note", note.ID)
}

func (m *mockNoteRepo) Delete(_ context.Context, id string) error {
	for slug, n := range m.notes {
		if n.ID == id {
			delete(m.notes, slug)
			return nil
		}
	}
	return apperror.NotFound("note", id)
}

type mockUserRepo struct {
	users  map[string]*model.User // keyed by ID
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return apperror.Conflict("user", user.Username)
		}
	}
	m.nextID++
	user.ID = fmt.Sprintf("user-%d", m.nextID)
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	result := *u
	return &result, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			result := *u
			return &result, nil
		}
	}
	return nil, apperror.NotFound("user", username)
}

// Interface conformance for all fakes.
var (
	_ repository.NewsRepository    = (*mockNewsRepo)(nil)
	_ repository.CommentRepository = (*mockCommentRepo)(nil)
	_ repository.NoteRepository    = (*mockNoteRepo)(nil)
	_ repository.UserRepository    = (*mockUserRepo)(nil)
)

// testLogger discards everything below error level.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func mustCreateNews(t *testing.T, repo *mockNewsRepo, title string) *model.News {
	t.Helper()
	news := &model.News{Title: title, Text: "Текст"}
	if err := repo.Create(context.Background(), news); err != nil {
		t.Fatalf("creating news: %v", err)
	}
	return news
}
