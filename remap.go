package uvmap

import (
	"image"

	intImage "github.com/gogpu/uvmap/internal/image"
)

// Interpolation selects how Remap samples between source pixels.
type Interpolation = intImage.InterpolationMode

const (
	// Nearest takes the source pixel containing the coordinate, like the
	// nearest/clamp sampler bound by the GPU filter. Shuffle and unshuffle
	// round-trip exactly with Nearest.
	Nearest = intImage.InterpNearest

	// Bilinear blends the four surrounding source pixels.
	Bilinear = intImage.InterpBilinear
)

// ParseInterpolation parses "nearest" or "bilinear".
func ParseInterpolation(s string) (Interpolation, error) {
	return intImage.ParseInterpolation(s)
}

// Remap samples src through f and returns an image of the field's size.
//
// Output pixel (x, y) is src sampled at f.At(x, y), with coordinates scaled
// to src's own size, so src need not match the field dimensions.
// Coordinates outside [0, 1] clamp to the edge.
func Remap(f *Field, src image.Image, mode Interpolation, opts ...Option) *image.NRGBA {
	buf := intImage.FromStdImage(src)
	dst := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))

	applyOptions(opts).forEachRowBand(f.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+f.width*4]
			for x, uv := range f.data[y*f.width : (y+1)*f.width] {
				r, g, b, a := intImage.Sample(buf, uv.U, uv.V, mode)
				p := row[x*4 : x*4+4 : x*4+4]
				p[0], p[1], p[2], p[3] = r, g, b, a
			}
		}
	})
	return dst
}
