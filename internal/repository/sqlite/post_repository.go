package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"postboard/internal/domain"
	"postboard/internal/repository"
)

const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

const selectPostColumns = `
SELECT p.id, p.title, p.content, p.user_id, p.created_at, p.updated_at,
	u.id, u.username, u.role, u.created_at, u.updated_at
FROM posts p
JOIN users u ON u.id = p.user_id`

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) repository.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPostsTable); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (int64, error) {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO posts (title, content, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		post.Title,
		post.Content,
		post.UserID,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("post last insert id: %w", err)
	}
	post.ID = id
	return id, nil
}

// Update persists title and content only; user_id is immutable after creation.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	post.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		post.Title,
		post.Content,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update post rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("post %d: %w", post.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *PostRepository) Get(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, selectPostColumns+`
WHERE p.id = ?`,
		id,
	)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectPostColumns+`
ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func scanPost(row interface {
	Scan(dest ...any) error
}) (*domain.Post, error) {
	var (
		post  domain.Post
		owner domain.User
	)
	if err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.UserID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&owner.ID,
		&owner.Username,
		&owner.Role,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}
	post.User = &owner
	return &post, nil
}
