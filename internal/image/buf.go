// Package image holds the pixel buffers, sampling and codecs used by the
// CPU remap path.
package image

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside the buffer.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a tightly packed, non-premultiplied RGBA8 buffer with its
// origin at (0, 0).
//
// Thread safety: concurrent reads are safe. SetRGBA requires external
// synchronization, except that goroutines writing disjoint rows do not race.
type ImageBuf struct {
	img *image.NRGBA
}

// NewImageBuf creates a transparent buffer of the given size.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &ImageBuf{img: image.NewNRGBA(image.Rect(0, 0, width, height))}, nil
}

// FromStdImage converts any image.Image into an ImageBuf.
// The source bounds are translated so the result starts at (0, 0).
func FromStdImage(src image.Image) *ImageBuf {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == 4*n.Rect.Dx() {
		return &ImageBuf{img: n}
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &ImageBuf{img: dst}
}

// Width returns the buffer width in pixels.
func (b *ImageBuf) Width() int { return b.img.Rect.Dx() }

// Height returns the buffer height in pixels.
func (b *ImageBuf) Height() int { return b.img.Rect.Dy() }

// Bounds returns width and height.
func (b *ImageBuf) Bounds() (int, int) {
	return b.Width(), b.Height()
}

// GetRGBA returns the color at (x, y). Out-of-bounds reads return zero.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return 0, 0, 0, 0
	}
	off := y*b.img.Stride + x*4
	p := b.img.Pix[off : off+4 : off+4]
	return p[0], p[1], p[2], p[3]
}

// SetRGBA sets the color at (x, y).
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return ErrOutOfBounds
	}
	b.img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: bl, A: a})
	return nil
}

// Image returns the buffer as an *image.NRGBA sharing the same pixels.
func (b *ImageBuf) Image() *image.NRGBA {
	return b.img
}
