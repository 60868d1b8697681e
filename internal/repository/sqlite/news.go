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

// NewsRepo implements repository.NewsRepository.
type NewsRepo struct {
	conn *sql.DB
}

// Compile-time check that the interface is fully implemented.
var _ repository.NewsRepository = (*NewsRepo)(nil)

// Create inserts a news item. The ID is generated here (xid: 20 chars,
// URL-safe, time-sortable); a zero Date defaults to now so seeded and
// backdated items can both use this path.
func (r *NewsRepo) Create(ctx context.Context, news *model.News) error {
	news.ID = xid.New().String()
	if news.Date.IsZero() {
		news.Date = time.Now()
	}

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO news (id, title, text, date) VALUES (?, ?, ?, ?)`,
		news.ID, news.Title, news.Text, news.Date,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating news: %w", err)
	}

	return nil
}

// GetByID fetches one news item.
func (r *NewsRepo) GetByID(ctx context.Context, id string) (*model.News, error) {
	var n model.News
	err := r.conn.QueryRowContext(ctx,
		`SELECT id, title, text, date FROM news WHERE id = ?`,
		id,
	).Scan(&n.ID, &n.Title, &n.Text, &n.Date)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("news", id)
		}
		return nil, fmt.Errorf("sqlite: getting news %s: %w", id, err)
	}
	return &n, nil
}

// ListRecent returns at most limit items, newest date first. The home
// page never shows more than the configured page size, so the cap is
// applied in SQL rather than in memory.
func (r *NewsRepo) ListRecent(ctx context.Context, limit int) ([]model.News, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, title, text, date FROM news ORDER BY date DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing news: %w", err)
	}
	defer rows.Close()

	items := make([]model.News, 0, limit)
	for rows.Next() {
		var n model.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Text, &n.Date); err != nil {
			return nil, fmt.Errorf("sqlite: scanning news row: %w", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating news: %w", err)
	}

	return items, nil
}

// Count returns the total number of news rows. The server uses it to
// decide whether demo seeding is needed.
func (r *NewsRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM news`).Scan(&count); err != nil {
		return 0, fmt.Errorf("sqlite: counting news: %w", err)
	}
	return count, nil
}
