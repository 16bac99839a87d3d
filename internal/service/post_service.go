package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"postboard/internal/auth"
	"postboard/internal/domain"
	"postboard/internal/repository"
)

// CreatePostInput is the accepted payload for creating a post. The owner is
// never part of the payload; it is always the authenticated caller.
type CreatePostInput struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostInput is the accepted payload for updating a post. Each field is
// optional but must satisfy the create constraints when present. There is
// deliberately no way to supply user_id.
type UpdatePostInput struct {
	Title   *string `json:"title" validate:"omitnil,required,max=255"`
	Content *string `json:"content" validate:"omitnil,required"`
}

// PostService coordinates post operations: validation, authorization through
// the gate, and persistence.
type PostService interface {
	Create(ctx context.Context, ident *auth.Identity, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, ident *auth.Identity, id int64, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, ident *auth.Identity, id int64) error
}

type postService struct {
	posts    repository.PostRepository
	gate     *auth.Gate
	validate *validator.Validate
}

func NewPostService(posts repository.PostRepository, gate *auth.Gate) PostService {
	return &postService{
		posts:    posts,
		gate:     gate,
		validate: newValidator(),
	}
}

func (s *postService) Create(ctx context.Context, ident *auth.Identity, input CreatePostInput) (*domain.Post, error) {
	if ident == nil {
		return nil, domain.NewAuthorizationError("")
	}
	if err := checkStruct(s.validate, input); err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:   input.Title,
		Content: input.Content,
		UserID:  ident.UserID,
	}
	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.Get(ctx, post.ID)
}

func (s *postService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.Get(ctx, id)
}

func (s *postService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// Update resolves the target before checking ownership, so a missing post is
// reported as not found rather than unauthorized.
func (s *postService) Update(ctx context.Context, ident *auth.Identity, id int64, input UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.gate.Allows(ident, auth.ActionUpdatePost, post) {
		return nil, domain.NewAuthorizationError("You do not own this post.")
	}

	if err := checkStruct(s.validate, input); err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.Get(ctx, id)
}

func (s *postService) Delete(ctx context.Context, ident *auth.Identity, id int64) error {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.gate.Authorize(ident, auth.ActionDeletePost, post); err != nil {
		return err
	}

	return s.posts.Delete(ctx, id)
}
