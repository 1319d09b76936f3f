// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"blog/internal/domain"
)

// DB implements the user repository in memory and backs the post repository.
type DB struct {
	mu    sync.Mutex
	users []*domain.User
	posts []*domain.Post

	userIDCounter int64
	postIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.PostRepository = (*PostRepo)(nil)

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			ret := *u
			return &ret, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			ret := *u
			return &ret, nil
		}
	}
	return nil, nil
}

// Create inserts a new user, enforcing username uniqueness under the lock so
// the check and insert are atomic like the database constraint they stand in
// for.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, domain.ErrUsernameTaken
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	db.users = append(db.users, u)

	ret := *u
	return &ret, nil
}

// --- PostRepository ---

// PostRepo implements post repository operations on DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// List returns all posts with author usernames, newest first.
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Post, 0, len(r.db.posts))
	for _, p := range r.db.posts {
		out = append(out, *p)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.After(out[j].Created)
		}
		// Ties fall back to insertion order.
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Get retrieves a single post, or nil if it does not exist.
func (r *PostRepo) Get(ctx context.Context, id int64) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			ret := *p
			return &ret, nil
		}
	}
	return nil, nil
}

// Create inserts a new post and returns its id.
func (r *PostRepo) Create(ctx context.Context, title, body string, authorID int64) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	authorName := ""
	for _, u := range r.db.users {
		if u.ID == authorID {
			authorName = u.Username
		}
	}

	r.db.postIDCounter++
	p := &domain.Post{
		ID:         r.db.postIDCounter,
		Title:      title,
		Body:       body,
		AuthorID:   authorID,
		AuthorName: authorName,
		Created:    time.Now(),
	}
	r.db.posts = append(r.db.posts, p)
	return p.ID, nil
}

// Update rewrites a post's title and body.
func (r *PostRepo) Update(ctx context.Context, id int64, title, body string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			p.Title = title
			p.Body = body
			return nil
		}
	}
	return nil
}

// Delete removes a post by id.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, p := range r.db.posts {
		if p.ID == id {
			r.db.posts = append(r.db.posts[:i], r.db.posts[i+1:]...)
			return nil
		}
	}
	return nil
}
