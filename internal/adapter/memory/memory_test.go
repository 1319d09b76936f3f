package memory

import (
	"context"
	"testing"

	"blog/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	db := New()

	first, err := db.Create(ctx, "alice", "hash1")
	require.NoError(t, err)

	_, err = db.Create(ctx, "alice", "hash2")
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	// Exactly one row exists afterward.
	got, err := db.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "hash1", got.PasswordHash)

	missing, err := db.GetByID(ctx, first.ID+1)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestGetUser_Missing(t *testing.T) {
	ctx := context.Background()
	db := New()

	u, err := db.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestListPosts_NewestFirst(t *testing.T) {
	ctx := context.Background()
	db := New()
	posts := NewPostRepo(db)

	author, err := db.Create(ctx, "alice", "hash")
	require.NoError(t, err)

	var ids []int64
	for _, title := range []string{"first", "second", "third"} {
		id, err := posts.Create(ctx, title, "", author.ID)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []int64{ids[2], ids[1], ids[0]}, []int64{list[0].ID, list[1].ID, list[2].ID})
	require.Equal(t, "third", list[0].Title)
}

func TestCreatePost_AttachesAuthorName(t *testing.T) {
	ctx := context.Background()
	db := New()
	posts := NewPostRepo(db)

	author, err := db.Create(ctx, "alice", "hash")
	require.NoError(t, err)

	id, err := posts.Create(ctx, "hello", "world", author.ID)
	require.NoError(t, err)

	post, err := posts.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice", post.AuthorName)
	require.Equal(t, author.ID, post.AuthorID)
	require.False(t, post.Created.IsZero())
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()
	db := New()
	posts := NewPostRepo(db)

	author, err := db.Create(ctx, "alice", "hash")
	require.NoError(t, err)
	id, err := posts.Create(ctx, "old", "old body", author.ID)
	require.NoError(t, err)

	require.NoError(t, posts.Update(ctx, id, "new", "new body"))

	post, err := posts.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "new", post.Title)
	require.Equal(t, "new body", post.Body)
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	db := New()
	posts := NewPostRepo(db)

	author, err := db.Create(ctx, "alice", "hash")
	require.NoError(t, err)
	id, err := posts.Create(ctx, "gone", "", author.ID)
	require.NoError(t, err)

	require.NoError(t, posts.Delete(ctx, id))

	post, err := posts.Get(ctx, id)
	require.NoError(t, err)
	require.Nil(t, post)
}
