package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"socialhub/internal/domain"
	"socialhub/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name TEXT NOT NULL,
	avatar_url TEXT NOT NULL DEFAULT '',
	date_of_birth DATETIME NULL,
	bio TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

const userColumns = `id, email, password_hash, name, avatar_url, date_of_birth, bio, location, created_at, updated_at`

// userColumnsAs qualifies the user column list with a table alias for joins.
func userColumnsAs(alias string) string {
	cols := strings.Split(userColumns, ", ")
	for i := range cols {
		cols[i] = alias + "." + cols[i]
	}
	return strings.Join(cols, ", ")
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, email, password_hash, name, avatar_url, date_of_birth, bio, location, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.AvatarURL,
		nullTime(user.DateOfBirth),
		user.Bio,
		user.Location,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", classify(err))
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+userColumns+`
FROM users
WHERE email = ?`,
		email,
	)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+userColumns+`
FROM users
WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

// Update applies only the fields set in patch and returns the stored row.
func (r *UserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		sets = append(sets, column+"=?")
		args = append(args, value)
	}

	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.AvatarURL != nil {
		set("avatar_url", *patch.AvatarURL)
	}
	if patch.ClearDateOfBirth {
		set("date_of_birth", nil)
	} else if patch.DateOfBirth != nil {
		set("date_of_birth", nullTime(patch.DateOfBirth))
	}
	if patch.Bio != nil {
		set("bio", *patch.Bio)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	set("updated_at", time.Now().UTC())
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET `+strings.Join(sets, ", ")+`
WHERE id=?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", classify(err))
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("user update rows affected: %w", err)
	}
	if aff == 0 {
		return nil, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	user, err := scanUserColumns(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return user, nil
}

// scanUserColumns reads the userColumns list followed by any extra destinations.
func scanUserColumns(row interface {
	Scan(dest ...any) error
}, extra ...any) (*domain.User, error) {
	var (
		user        domain.User
		dateOfBirth sql.NullTime
	)
	dest := []any{
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.AvatarURL,
		&dateOfBirth,
		&user.Bio,
		&user.Location,
		&user.CreatedAt,
		&user.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if dateOfBirth.Valid {
		t := dateOfBirth.Time.UTC()
		user.DateOfBirth = &t
	}
	return &user, nil
}
