package repository

import (
	"context"

	"socialhub/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
}

// FollowRepository stores the directed follower/following relation.
type FollowRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, follow *domain.Follow) error
	Delete(ctx context.Context, followerID, followingID string) error
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	// ListFollowers returns edges pointing at userID, resolved to the follower.
	ListFollowers(ctx context.Context, userID string) ([]domain.FollowEdge, error)
	// ListFollowing returns edges leaving userID, resolved to the followed user.
	ListFollowing(ctx context.Context, userID string) ([]domain.FollowEdge, error)
}
