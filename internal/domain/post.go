package domain

import (
	"context"
	"time"
)

// Post is a blog entry. AuthorName carries the author's username attached by
// the repository's join; it is never persisted on the post itself.
type Post struct {
	ID         int64
	Title      string
	Body       string
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// PostRepository defines the port for post persistence operations. List and
// Get join the author's username onto each row; List orders by creation time
// descending. The repository performs no authorization checks.
type PostRepository interface {
	List(ctx context.Context) ([]Post, error)
	Get(ctx context.Context, id int64) (*Post, error)
	Create(ctx context.Context, title, body string, authorID int64) (int64, error)
	Update(ctx context.Context, id int64, title, body string) error
	Delete(ctx context.Context, id int64) error
}
