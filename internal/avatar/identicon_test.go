package avatar

import (
	"bytes"
	"image/png"
	"testing"
)

func TestIdenticonIsDeterministic(t *testing.T) {
	a, err := Identicon("Alice", DefaultSize)
	if err != nil {
		t.Fatalf("identicon: %v", err)
	}
	b, err := Identicon("Alice", DefaultSize)
	if err != nil {
		t.Fatalf("identicon: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("same seed produced different images")
	}

	c, err := Identicon("Bob", DefaultSize)
	if err != nil {
		t.Fatalf("identicon: %v", err)
	}
	if bytes.Equal(a, c) {
		t.Fatalf("different seeds produced the same image")
	}
}

func TestIdenticonDimensions(t *testing.T) {
	data, err := Identicon("Alice", 64)
	if err != nil {
		t.Fatalf("identicon: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("unexpected bounds %v", b)
	}

	if _, err := Identicon("Alice", MinSize-1); err == nil {
		t.Fatalf("expected error for tiny size")
	}
}
