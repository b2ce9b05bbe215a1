package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"socialhub/internal/domain"
	"socialhub/internal/repository"
)

// FollowService maintains the follower/following relation.
type FollowService interface {
	Follow(ctx context.Context, followerID, followingID string) (*domain.Follow, error)
	Unfollow(ctx context.Context, followerID, followingID string) error
}

type followService struct {
	follows repository.FollowRepository
}

func NewFollowService(follows repository.FollowRepository) FollowService {
	return &followService{follows: follows}
}

func (s *followService) Follow(ctx context.Context, followerID, followingID string) (*domain.Follow, error) {
	followingID = strings.TrimSpace(followingID)
	if followingID == "" {
		return nil, fmt.Errorf("%w: followingId is required", ErrInvalidInput)
	}
	if followingID == followerID {
		return nil, fmt.Errorf("%w: you cannot follow yourself", ErrInvalidInput)
	}

	follow := &domain.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.follows.Create(ctx, follow); err != nil {
		switch {
		case errors.Is(err, repository.ErrReference):
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, fmt.Errorf("%w: already following", ErrConflict)
		}
		return nil, err
	}
	return follow, nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID string) error {
	if err := s.follows.Delete(ctx, followerID, followingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: not following", ErrNotFound)
		}
		return err
	}
	return nil
}
