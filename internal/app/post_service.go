package app

import (
	"context"
	"fmt"

	"blog/internal/domain"
)

// PostService encapsulates the post CRUD use cases and the ownership rule
// that only a post's author may change or delete it.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a PostService backed by the given repository.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// List returns all posts with author usernames, newest first.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// GetPost fetches a post by id. A missing post yields ErrPostNotFound; when
// checkAuthor is set, a post not owned by userID yields ErrForbidden. The
// existence check always runs first, so probing a nonexistent id never
// reveals whether it was owned by someone else.
func (s *PostService) GetPost(ctx context.Context, id, userID int64, checkAuthor bool) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post id %d doesn't exist: %w", id, domain.ErrPostNotFound)
	}
	if checkAuthor && post.AuthorID != userID {
		return nil, domain.ErrForbidden
	}
	return post, nil
}

// Create validates and stores a new post for the given author.
func (s *PostService) Create(ctx context.Context, userID int64, title, body string) (int64, error) {
	if title == "" {
		return 0, &domain.ValidationError{Msg: "Title is required."}
	}
	return s.posts.Create(ctx, title, body, userID)
}

// Update rewrites a post's title and body after the ownership check passes.
func (s *PostService) Update(ctx context.Context, userID, id int64, title, body string) error {
	if _, err := s.GetPost(ctx, id, userID, true); err != nil {
		return err
	}
	if title == "" {
		return &domain.ValidationError{Msg: "Title is required."}
	}
	return s.posts.Update(ctx, id, title, body)
}

// Delete removes a post after the ownership check passes.
func (s *PostService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.GetPost(ctx, id, userID, true); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
