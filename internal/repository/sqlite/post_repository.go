package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"socialhub/internal/domain"
	"socialhub/internal/repository"
)

const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id TEXT PRIMARY KEY,
	author_id TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	FOREIGN KEY(author_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts(author_id);
`

var selectPosts = `
SELECT ` + userColumnsAs("u") + `, p.id, p.author_id, p.content, p.created_at,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
FROM posts p
JOIN users u ON u.id = p.author_id`

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

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	post.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
INSERT INTO posts (id, author_id, content, created_at)
VALUES (?, ?, ?, ?)`,
		post.ID,
		post.AuthorID,
		post.Content,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", classify(err))
	}
	return nil
}

func (r *PostRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, selectPosts+`
WHERE p.id=?`, id)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}
	return post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectPosts+`
ORDER BY p.created_at DESC, p.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}

	return posts, rows.Err()
}

// Delete removes the post; its comments go with it through the cascade.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("post delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("post %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func scanPost(row interface {
	Scan(dest ...any) error
}) (*domain.Post, error) {
	var post domain.Post
	author, err := scanUserColumns(row,
		&post.ID,
		&post.AuthorID,
		&post.Content,
		&post.CreatedAt,
		&post.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	post.Author = author
	return &post, nil
}
