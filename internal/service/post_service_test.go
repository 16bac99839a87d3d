package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/auth"
	"postboard/internal/domain"
	"postboard/internal/repository"
	"postboard/internal/repository/sqlite"
)

func setupPostService(t *testing.T) (PostService, repository.UserRepository) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	userRepo := sqlite.NewUserRepository(db)
	postRepo := sqlite.NewPostRepository(db)
	require.NoError(t, userRepo.Init(ctx))
	require.NoError(t, postRepo.Init(ctx))

	return NewPostService(postRepo, auth.NewDefaultGate()), userRepo
}

func seedUser(t *testing.T, users repository.UserRepository, username, role string) *auth.Identity {
	t.Helper()

	user := &domain.User{Username: username, Role: role, PasswordHash: "x"}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)
	return &auth.Identity{UserID: user.ID, Role: user.Role}
}

func TestCreateAssignsCallerAsOwner(t *testing.T) {
	svc, users := setupPostService(t)
	caller := seedUser(t, users, "alice", domain.RoleUser)

	post, err := svc.Create(context.Background(), caller, CreatePostInput{
		Title:   "hello",
		Content: "world",
	})
	require.NoError(t, err)

	assert.Equal(t, caller.UserID, post.UserID)
	require.NotNil(t, post.User)
	assert.Equal(t, "alice", post.User.Username)
}

func TestCreateUnauthenticated(t *testing.T) {
	svc, _ := setupPostService(t)

	_, err := svc.Create(context.Background(), nil, CreatePostInput{Title: "t", Content: "c"})
	var authzErr *domain.AuthorizationError
	require.ErrorAs(t, err, &authzErr)
}

func TestCreateValidation(t *testing.T) {
	svc, users := setupPostService(t)
	caller := seedUser(t, users, "alice", domain.RoleUser)
	ctx := context.Background()

	_, err := svc.Create(ctx, caller, CreatePostInput{Content: "world"})
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors, "title")

	// nothing persisted
	posts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.Create(ctx, caller, CreatePostInput{Title: string(long), Content: "c"})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors, "title")
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	svc, users := setupPostService(t)
	caller := seedUser(t, users, "alice", domain.RoleUser)
	ctx := context.Background()

	post, err := svc.Create(ctx, caller, CreatePostInput{Title: "before", Content: "body"})
	require.NoError(t, err)

	title := "after"
	updated, err := svc.Update(ctx, caller, post.ID, UpdatePostInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.Equal(t, caller.UserID, updated.UserID)
	require.NotNil(t, updated.User)
}

func TestUpdateByNonOwnerLeavesPostUnchanged(t *testing.T) {
	svc, users := setupPostService(t)
	owner := seedUser(t, users, "alice", domain.RoleUser)
	other := seedUser(t, users, "bob", domain.RoleUser)
	ctx := context.Background()

	post, err := svc.Create(ctx, owner, CreatePostInput{Title: "mine", Content: "body"})
	require.NoError(t, err)

	title := "stolen"
	_, err = svc.Update(ctx, other, post.ID, UpdatePostInput{Title: &title})
	var authzErr *domain.AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "You do not own this post.", authzErr.Reason)

	fresh, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", fresh.Title)
	assert.Equal(t, owner.UserID, fresh.UserID)
}

func TestUpdateMissingPostIsNotFoundBeforeAuthorization(t *testing.T) {
	svc, users := setupPostService(t)
	other := seedUser(t, users, "bob", domain.RoleUser)

	title := "x"
	_, err := svc.Update(context.Background(), other, 9999, UpdatePostInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// same precedence for an unauthenticated caller
	_, err = svc.Update(context.Background(), nil, 9999, UpdatePostInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateValidatesSuppliedFields(t *testing.T) {
	svc, users := setupPostService(t)
	caller := seedUser(t, users, "alice", domain.RoleUser)
	ctx := context.Background()

	post, err := svc.Create(ctx, caller, CreatePostInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(ctx, caller, post.ID, UpdatePostInput{Title: &empty})
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors, "title")
}

func TestDeleteByOwner(t *testing.T) {
	svc, users := setupPostService(t)
	caller := seedUser(t, users, "alice", domain.RoleUser)
	ctx := context.Background()

	post, err := svc.Create(ctx, caller, CreatePostInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, caller, post.ID))

	_, err = svc.Get(ctx, post.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteByNonOwner(t *testing.T) {
	svc, users := setupPostService(t)
	owner := seedUser(t, users, "alice", domain.RoleUser)
	other := seedUser(t, users, "bob", domain.RoleUser)
	ctx := context.Background()

	post, err := svc.Create(ctx, owner, CreatePostInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	err = svc.Delete(ctx, other, post.ID)
	var authzErr *domain.AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, domain.DefaultAuthorizationReason, authzErr.Reason)

	_, err = svc.Get(ctx, post.ID)
	require.NoError(t, err, "post must survive a denied delete")
}

func TestDeleteMissingPostIsNotFound(t *testing.T) {
	svc, users := setupPostService(t)
	caller := seedUser(t, users, "alice", domain.RoleUser)

	err := svc.Delete(context.Background(), caller, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	svc, users := setupPostService(t)
	caller := seedUser(t, users, "alice", domain.RoleUser)
	ctx := context.Background()

	first, err := svc.Create(ctx, caller, CreatePostInput{Title: "first", Content: "c"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, caller, CreatePostInput{Title: "second", Content: "c"})
	require.NoError(t, err)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	require.NotNil(t, posts[0].User)
}

func TestListEmpty(t *testing.T) {
	svc, _ := setupPostService(t)

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}
