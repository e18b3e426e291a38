package image

import (
	"fmt"
	"math"
	"strings"
)

// InterpolationMode defines how a texture is sampled between texel centers.
type InterpolationMode uint8

const (
	// InterpNearest selects the texel containing the coordinate.
	// This matches the nearest/clamp sampler used for the GPU remap pass.
	InterpNearest InterpolationMode = iota

	// InterpBilinear blends the four texels around the coordinate.
	InterpBilinear
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "nearest"
	case InterpBilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// ParseInterpolation parses "nearest" or "bilinear" (case-insensitive).
func ParseInterpolation(s string) (InterpolationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "":
		return InterpNearest, nil
	case "bilinear", "linear":
		return InterpBilinear, nil
	default:
		return InterpNearest, fmt.Errorf("image: unknown interpolation %q", s)
	}
}

// Sample samples img at normalized coordinates (u, v). (0,0) is the
// top-left corner and (1,1) the bottom-right corner. Coordinates outside
// [0, 1] are clamped to the edge texels.
func Sample(img *ImageBuf, u, v float32, mode InterpolationMode) (r, g, b, a uint8) {
	if mode == InterpBilinear {
		return SampleBilinear(img, u, v)
	}
	return SampleNearest(img, u, v)
}

// SampleNearest returns the texel containing (u, v).
func SampleNearest(img *ImageBuf, u, v float32) (r, g, b, a uint8) {
	w, h := img.Bounds()
	x := clamp(int(math.Floor(float64(u)*float64(w))), 0, w-1)
	y := clamp(int(math.Floor(float64(v)*float64(h))), 0, h-1)
	return img.GetRGBA(x, y)
}

// SampleBilinear interpolates between the four texel centers around (u, v).
func SampleBilinear(img *ImageBuf, u, v float32) (r, g, b, a uint8) {
	w, h := img.Bounds()

	fx := float64(u)*float64(w) - 0.5
	fy := float64(v)*float64(h) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clamp(x0+1, 0, w-1)
	y1 := clamp(y0+1, 0, h-1)
	x0 = clamp(x0, 0, w-1)
	y0 = clamp(y0, 0, h-1)

	r00, g00, b00, a00 := img.GetRGBA(x0, y0)
	r10, g10, b10, a10 := img.GetRGBA(x1, y0)
	r01, g01, b01, a01 := img.GetRGBA(x0, y1)
	r11, g11, b11, a11 := img.GetRGBA(x1, y1)

	r = lerp2D(r00, r10, r01, r11, tx, ty)
	g = lerp2D(g00, g10, g01, g11, tx, ty)
	b = lerp2D(b00, b10, b01, b11, tx, ty)
	a = lerp2D(a00, a10, a01, a11, tx, ty)
	return r, g, b, a
}

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D interpolates a 2x2 neighbourhood and rounds to the nearest byte.
func lerp2D(v00, v10, v01, v11 uint8, tx, ty float64) uint8 {
	top := lerp(float64(v00), float64(v10), tx)
	bottom := lerp(float64(v01), float64(v11), tx)
	return uint8(math.Round(math.Min(math.Max(lerp(top, bottom, ty), 0), 255)))
}
