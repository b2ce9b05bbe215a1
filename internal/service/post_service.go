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

// PostService coordinates post operations backed by repositories.
type PostService interface {
	Create(ctx context.Context, authorID, content string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Delete(ctx context.Context, id, callerID string) error
}

type postService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func NewPostService(posts repository.PostRepository, comments repository.CommentRepository) PostService {
	return &postService{
		posts:    posts,
		comments: comments,
	}
}

func (s *postService) Create(ctx context.Context, authorID, content string) (*domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	post := &domain.Post{
		ID:       uuid.NewString(),
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, fmt.Errorf("%w: author not found", ErrNotFound)
		}
		return nil, err
	}

	return s.Get(ctx, post.ID)
}

func (s *postService) List(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Author = sanitizeUser(posts[i].Author)
	}
	return posts, nil
}

func (s *postService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		comments[i].Author = sanitizeUser(comments[i].Author)
	}
	post.Author = sanitizeUser(post.Author)
	post.Comments = comments
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id, callerID string) error {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return err
	}
	if post.AuthorID != callerID {
		return ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return err
	}
	return nil
}
