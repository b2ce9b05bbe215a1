package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"socialhub/internal/avatar"
	"socialhub/internal/domain"
	"socialhub/internal/repository"
	"socialhub/internal/storage"
)

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

// TokenIssuer issues bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// Upload is a file supplied with a profile update.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// UpdateUserInput holds the optional fields of a profile update.
// A nil field is left untouched; a non-nil field is applied even when empty.
type UpdateUserInput struct {
	Email       *string
	Name        *string
	DateOfBirth *string
	Bio         *string
	Location    *string
	Avatar      *Upload
}

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id, callerID string) (*domain.Profile, error)
	Update(ctx context.Context, id, callerID string, input UpdateUserInput) (*domain.User, error)
	Current(ctx context.Context, callerID string) (*domain.Profile, error)
}

type userService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
	hasher  PasswordHasher
	tokens  TokenIssuer
	files   storage.Store
	logger  *logrus.Logger
}

func NewUserService(
	users repository.UserRepository,
	follows repository.FollowRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	files storage.Store,
	logger *logrus.Logger,
) UserService {
	if logger == nil {
		logger = logrus.New()
	}
	return &userService{
		users:   users,
		follows: follows,
		hasher:  hasher,
		tokens:  tokens,
		files:   files,
		logger:  logger,
	}
}

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: user already exists", ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	png, err := avatar.Identicon(name, avatar.DefaultSize)
	if err != nil {
		return nil, err
	}
	avatarName := "avatar_" + id + ".png"
	avatarURL, err := s.files.Put(ctx, avatarName, bytes.NewReader(png), "image/png")
	if err != nil {
		return nil, fmt.Errorf("store avatar: %w", err)
	}

	user := &domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		AvatarURL:    avatarURL,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.discardFile(avatarName)
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: user already exists", ErrConflict)
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if !s.hasher.Matches(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

func (s *userService) GetByID(ctx context.Context, id, callerID string) (*domain.Profile, error) {
	profile, err := s.profile(ctx, id)
	if err != nil {
		return nil, err
	}

	following, err := s.follows.Exists(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	profile.IsFollowing = &following
	return profile, nil
}

func (s *userService) Current(ctx context.Context, callerID string) (*domain.Profile, error) {
	return s.profile(ctx, callerID)
}

func (s *userService) profile(ctx context.Context, id string) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	followers, err := s.follows.ListFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.ListFollowing(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range followers {
		followers[i].User = *sanitizeUser(&followers[i].User)
	}
	for i := range following {
		following[i].User = *sanitizeUser(&following[i].User)
	}

	return &domain.Profile{
		User:      *sanitizeUser(user),
		Followers: followers,
		Following: following,
	}, nil
}

func (s *userService) Update(ctx context.Context, id, callerID string, input UpdateUserInput) (*domain.User, error) {
	if id != callerID {
		return nil, ErrForbidden
	}

	patch, err := s.buildPatch(ctx, id, input)
	if err != nil {
		return nil, err
	}

	var uploadName string
	if input.Avatar != nil {
		uploadName = id + "_" + uuid.NewString() + uploadExt(input.Avatar.Filename)
		url, err := s.files.Put(ctx, uploadName, input.Avatar.Body, input.Avatar.ContentType)
		if err != nil {
			return nil, fmt.Errorf("store upload: %w", err)
		}
		patch.AvatarURL = &url
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		if uploadName != "" {
			s.discardFile(uploadName)
		}
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, fmt.Errorf("%w: email is already in use", ErrConflict)
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) buildPatch(ctx context.Context, id string, input UpdateUserInput) (domain.UserPatch, error) {
	var patch domain.UserPatch

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email == "" {
			return patch, fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
		}
		existing, err := s.users.GetByEmail(ctx, email)
		switch {
		case err == nil && existing.ID != id:
			return patch, fmt.Errorf("%w: email is already in use", ErrConflict)
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return patch, fmt.Errorf("lookup user: %w", err)
		}
		patch.Email = &email
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return patch, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		patch.Name = &name
	}
	if input.DateOfBirth != nil {
		raw := strings.TrimSpace(*input.DateOfBirth)
		if raw == "" {
			patch.ClearDateOfBirth = true
		} else {
			dob, err := parseDate(raw)
			if err != nil {
				return patch, fmt.Errorf("%w: dateOfBirth must be YYYY-MM-DD or RFC3339", ErrInvalidInput)
			}
			patch.DateOfBirth = &dob
		}
	}
	patch.Bio = input.Bio
	patch.Location = input.Location

	return patch, nil
}

// discardFile removes a stored file whose database row was never written.
func (s *userService) discardFile(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.files.Delete(ctx, name); err != nil {
		s.logger.WithError(err).WithField("file", name).Warn("remove orphaned file")
	}
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

func uploadExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !extPattern.MatchString(ext) {
		return ""
	}
	return ext
}

// sanitizeUser copies the public fields only; the password hash never leaves the service.
func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		AvatarURL:   user.AvatarURL,
		DateOfBirth: user.DateOfBirth,
		Bio:         user.Bio,
		Location:    user.Location,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
