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

// CommentRepo implements repository.CommentRepository.
type CommentRepo struct {
	conn *sql.DB
}

var _ repository.CommentRepository = (*CommentRepo)(nil)

// Create inserts a comment, generating its ID and Created timestamp.
func (r *CommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	comment.ID = xid.New().String()
	comment.Created = time.Now()

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO comments (id, news_id, author_id, text, created)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.ID, comment.NewsID, comment.AuthorID, comment.Text, comment.Created,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating comment: %w", err)
	}

	return nil
}

// GetByID fetches one comment.
func (r *CommentRepo) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var c model.Comment
	err := r.conn.QueryRowContext(ctx,
		`SELECT id, news_id, author_id, text, created FROM comments WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.NewsID, &c.AuthorID, &c.Text, &c.Created)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("comment", id)
		}
		return nil, fmt.Errorf("sqlite: getting comment %s: %w", id, err)
	}
	return &c, nil
}

// ListByNews returns a news item's comments oldest-first. The detail
// page renders them in exactly this order.
func (r *CommentRepo) ListByNews(ctx context.Context, newsID string) ([]model.Comment, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, news_id, author_id, text, created
		 FROM comments
		 WHERE news_id = ?
		 ORDER BY created ASC`,
		newsID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing comments for news %s: %w", newsID, err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.NewsID, &c.AuthorID, &c.Text, &c.Created); err != nil {
			return nil, fmt.Errorf("sqlite: scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating comments: %w", err)
	}

	return comments, nil
}

// UpdateText changes a comment's text and nothing else. There is no
// update path for news_id or author_id at all — immutability enforced
// by omission.
func (r *CommentRepo) UpdateText(ctx context.Context, id, text string) error {
	result, err := r.conn.ExecContext(ctx,
		`UPDATE comments SET text = ? WHERE id = ?`,
		text, id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating comment %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("comment", id)
	}

	return nil
}

// Delete removes a comment.
func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx,
		`DELETE FROM comments WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting comment %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("comment", id)
	}

	return nil
}
