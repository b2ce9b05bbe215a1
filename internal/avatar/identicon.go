// Package avatar renders deterministic identicons used as default profile pictures.
package avatar

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"

	"github.com/issue9/identicon"
)

const (
	MinSize     = 16
	DefaultSize = 200
)

var (
	background = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	palette    = []color.Color{
		color.NRGBA{R: 0xe0, G: 0x4f, B: 0x5f, A: 0xff},
		color.NRGBA{R: 0x2e, G: 0x86, B: 0xab, A: 0xff},
		color.NRGBA{R: 0x3c, G: 0xa5, B: 0x5c, A: 0xff},
		color.NRGBA{R: 0xf2, G: 0x9e, B: 0x4c, A: 0xff},
		color.NRGBA{R: 0x7b, G: 0x4f, B: 0xa8, A: 0xff},
		color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	}
)

// Identicon returns a size x size PNG derived only from seed.
// Equal seeds always produce byte-identical images.
func Identicon(seed string, size int) ([]byte, error) {
	if size < MinSize {
		return nil, fmt.Errorf("identicon size must be at least %d, got %d", MinSize, size)
	}

	gen, err := identicon.New(size, background, palette...)
	if err != nil {
		return nil, fmt.Errorf("identicon generator: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, gen.Make([]byte(seed))); err != nil {
		return nil, fmt.Errorf("encode identicon: %w", err)
	}
	return buf.Bytes(), nil
}
