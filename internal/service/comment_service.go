package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"socialhub/internal/domain"
	"socialhub/internal/repository"
)

// CommentService creates and removes comments on posts.
type CommentService interface {
	Create(ctx context.Context, postID, content, authorID string) (*domain.Comment, error)
	Delete(ctx context.Context, id, callerID string) (*domain.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
}

func NewCommentService(comments repository.CommentRepository) CommentService {
	return &commentService{comments: comments}
}

// Create does not look the post up first; the post_id and user_id foreign keys
// reject orphans, and sqlite does not report which of the two failed.
func (s *commentService) Create(ctx context.Context, postID, content, authorID string) (*domain.Comment, error) {
	if strings.TrimSpace(postID) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}

	comment := &domain.Comment{
		ID:      uuid.NewString(),
		PostID:  postID,
		UserID:  authorID,
		Content: content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, fmt.Errorf("%w: post or author does not exist", ErrInvalidInput)
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id, callerID string) (*domain.Comment, error) {
	comment, err := s.comments.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: comment not found", ErrNotFound)
		}
		return nil, err
	}
	if comment.UserID != callerID {
		return nil, ErrForbidden
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: comment not found", ErrNotFound)
		}
		return nil, err
	}
	comment.Author = sanitizeUser(comment.Author)
	return comment, nil
}
