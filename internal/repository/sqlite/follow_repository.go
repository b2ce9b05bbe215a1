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

const createFollowsTable = `
CREATE TABLE IF NOT EXISTS follows (
	follower_id TEXT NOT NULL,
	following_id TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	PRIMARY KEY (follower_id, following_id),
	CHECK (follower_id <> following_id),
	FOREIGN KEY(follower_id) REFERENCES users(id) ON DELETE CASCADE,
	FOREIGN KEY(following_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_follows_following_id ON follows(following_id);
`

type FollowRepository struct {
	db *sql.DB
}

func NewFollowRepository(db *sql.DB) repository.FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createFollowsTable); err != nil {
		return fmt.Errorf("create follows table: %w", err)
	}
	return nil
}

func (r *FollowRepository) Create(ctx context.Context, follow *domain.Follow) error {
	follow.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
INSERT INTO follows (follower_id, following_id, created_at)
VALUES (?, ?, ?)`,
		follow.FollowerID,
		follow.FollowingID,
		follow.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert follow: %w", classify(err))
	}
	return nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM follows WHERE follower_id=? AND following_id=?`, followerID, followingID)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("follow delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("follow: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
SELECT 1
FROM follows
WHERE follower_id=? AND following_id=?`,
		followerID,
		followingID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query follow: %w", err)
	}
	return true, nil
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID string) ([]domain.FollowEdge, error) {
	return r.listEdges(ctx, `
SELECT `+userColumnsAs("u")+`, f.follower_id, f.following_id, f.created_at
FROM follows f
JOIN users u ON u.id = f.follower_id
WHERE f.following_id=?
ORDER BY f.created_at ASC, f.rowid ASC`, userID)
}

func (r *FollowRepository) ListFollowing(ctx context.Context, userID string) ([]domain.FollowEdge, error) {
	return r.listEdges(ctx, `
SELECT `+userColumnsAs("u")+`, f.follower_id, f.following_id, f.created_at
FROM follows f
JOIN users u ON u.id = f.following_id
WHERE f.follower_id=?
ORDER BY f.created_at ASC, f.rowid ASC`, userID)
}

func (r *FollowRepository) listEdges(ctx context.Context, query, userID string) ([]domain.FollowEdge, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query follows: %w", err)
	}
	defer rows.Close()

	edges := []domain.FollowEdge{}
	for rows.Next() {
		var edge domain.FollowEdge
		user, err := scanUserColumns(rows, &edge.FollowerID, &edge.FollowingID, &edge.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan follow: %w", err)
		}
		edge.User = *user
		edges = append(edges, edge)
	}

	return edges, rows.Err()
}
