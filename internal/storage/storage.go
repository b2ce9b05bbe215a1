package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// Store persists user-visible files (avatars, profile uploads) and
// returns the reference saved in user records.
type Store interface {
	Put(ctx context.Context, name string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, name string) error
}

var ErrInvalidName = errors.New("invalid file name")

// validateName accepts flat names only so callers cannot escape the store root.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || path.Clean(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func joinURL(prefix, name string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + name
}
