package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/domain"
)

func setupRepos(t *testing.T) (*PostRepository, int64) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	users := NewUserRepository(db).(*UserRepository)
	posts := NewPostRepository(db).(*PostRepository)
	require.NoError(t, users.Init(ctx))
	require.NoError(t, posts.Init(ctx))

	owner := &domain.User{Username: "alice", Role: domain.RoleUser, PasswordHash: "x"}
	ownerID, err := users.Create(ctx, owner)
	require.NoError(t, err)

	return posts, ownerID
}

func TestPostRepositoryGetAttachesOwner(t *testing.T) {
	posts, ownerID := setupRepos(t)
	ctx := context.Background()

	post := &domain.Post{Title: "t", Content: "c", UserID: ownerID}
	id, err := posts.Create(ctx, post)
	require.NoError(t, err)

	got, err := posts.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, ownerID, got.UserID)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice", got.User.Username)
	assert.Empty(t, got.User.PasswordHash, "owner join never selects the password hash")
}

func TestPostRepositoryGetMissing(t *testing.T) {
	posts, _ := setupRepos(t)

	_, err := posts.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostRepositoryUpdateNeverTouchesOwner(t *testing.T) {
	posts, ownerID := setupRepos(t)
	ctx := context.Background()

	post := &domain.Post{Title: "t", Content: "c", UserID: ownerID}
	id, err := posts.Create(ctx, post)
	require.NoError(t, err)

	// a tampered UserID on the aggregate must not reach storage
	post.Title = "t2"
	post.UserID = ownerID + 100
	require.NoError(t, posts.Update(ctx, post))

	got, err := posts.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.Title)
	assert.Equal(t, ownerID, got.UserID)
}

func TestPostRepositoryDeleteMissing(t *testing.T) {
	posts, _ := setupRepos(t)

	err := posts.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
