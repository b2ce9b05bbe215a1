package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorePutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	ref, err := store.Put(ctx, "avatar_1.png", strings.NewReader("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if ref != "/uploads/avatar_1.png" {
		t.Fatalf("unexpected reference %q", ref)
	}
	data, err := os.ReadFile(filepath.Join(dir, "avatar_1.png"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected content %q", data)
	}

	if err := store.Delete(ctx, "avatar_1.png"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "avatar_1.png")); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err %v", err)
	}
	if err := store.Delete(ctx, "avatar_1.png"); err != nil {
		t.Fatalf("deleting a missing file should succeed: %v", err)
	}
}

func TestLocalStoreRejectsPathNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	for _, name := range []string{"", "..", "../escape.png", "a/b.png", `a\b.png`} {
		if _, err := store.Put(context.Background(), name, strings.NewReader("x"), ""); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("name %q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestLocalStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Put(context.Background(), "a.png", strings.NewReader("x"), ""); err != nil {
		t.Fatalf("put: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.png" {
		t.Fatalf("unexpected dir contents: %v", entries)
	}
}
