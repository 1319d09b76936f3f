package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"blog/internal/domain"
)

// PostRepo implements post repository operations on DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// List returns all posts joined with the author's username, newest first.
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT p.id, p.title, p.body, p.author_id, u.username, p.created
		 FROM posts p JOIN users u ON p.author_id = u.id
		 ORDER BY p.created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.AuthorName, &p.Created); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get retrieves a single post joined with the author's username.
func (r *PostRepo) Get(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := r.db.sql.QueryRowContext(ctx,
		`SELECT p.id, p.title, p.body, p.author_id, u.username, p.created
		 FROM posts p JOIN users u ON p.author_id = u.id
		 WHERE p.id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.AuthorName, &p.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new post and returns its id.
func (r *PostRepo) Create(ctx context.Context, title, body string, authorID int64) (int64, error) {
	var id int64
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO posts (title, body, author_id, created) VALUES ($1, $2, $3, $4) RETURNING id",
		title, body, authorID, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites a post's title and body.
func (r *PostRepo) Update(ctx context.Context, id int64, title, body string) error {
	_, err := r.db.sql.ExecContext(ctx,
		"UPDATE posts SET title = $1, body = $2 WHERE id = $3",
		title, body, id)
	return err
}

// Delete removes a post by id.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}
