package uvmap

import (
	"fmt"
	"time"
)

// Region is a rectangle of the full frame, in pixels.
//
// The zero Region stands for the whole frame.
type Region struct {
	X, Y          int
	Width, Height int
}

// IsZero reports whether r is the zero Region.
func (r Region) IsZero() bool {
	return r == Region{}
}

// GenerateReverse builds the map that undoes Generate(seed, g).
//
// Sampling a shuffled frame through the result restores the original
// picture. Each output pixel (x, y) looks up the grid position its cell was
// moved to, and the trailing column and row are compressed by
// LastWidth/CellWidth (LastHeight/CellHeight) to match the stretch applied
// by the forward map.
//
// When crop is not zero, the shuffled frame is assumed to be visible only
// through crop, and each coordinate (u, v) is rewritten to
// ((crop.X + crop.Width*u)/g.Width, (crop.Y + crop.Height*v)/g.Height).
func GenerateReverse(seed uint32, g Geometry, crop Region, opts ...Option) (*Field, error) {
	if crop.Width < 0 || crop.Height < 0 {
		return nil, fmt.Errorf("%w: negative crop %dx%d", ErrInvalidGeometry, crop.Width, crop.Height)
	}
	if crop.IsZero() {
		crop = Region{Width: g.Width, Height: g.Height}
	}

	gr, err := ShuffledGrid(seed, g)
	if err != nil {
		return nil, err
	}
	return expandReverse(gr, gr.Inverse(), crop, applyOptions(opts)), nil
}

func expandReverse(gr *Grid, inv []Cell, crop Region, o options) *Field {
	start := time.Now()
	f := newField(gr.Width, gr.Height)

	lastScaleX := float32(gr.LastWidth) / float32(gr.CellWidth)
	lastScaleY := float32(gr.LastHeight) / float32(gr.CellHeight)
	width := float32(gr.Width)
	height := float32(gr.Height)

	cropX, cropY := float32(crop.X), float32(crop.Y)
	cropW, cropH := float32(crop.Width), float32(crop.Height)

	o.forEachRowBand(gr.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			cy := y / gr.CellHeight
			ly := y % gr.CellHeight
			row := f.data[y*gr.Width : (y+1)*gr.Width]

			for x := range row {
				m := inv[cy*gr.CountX+x/gr.CellWidth]

				scaleX, scaleY := float32(1), float32(1)
				if m.X >= gr.CountX-1 {
					scaleX = lastScaleX
				}
				if m.Y >= gr.CountY-1 {
					scaleY = lastScaleY
				}
				newX := cellOffset(m.X*gr.CellWidth, x%gr.CellWidth, scaleX, gr.Width)
				newY := cellOffset(m.Y*gr.CellHeight, ly, scaleY, gr.Height)

				u := (newX + 0.5) / width
				v := (newY + 0.5) / height
				row[x] = UV{
					U: (cropX + float32(cropW*u)) / width,
					V: (cropY + float32(cropH*v)) / height,
				}
			}
		}
	})

	Logger().Debug("uvmap: generated reverse map",
		"width", gr.Width, "height", gr.Height,
		"crop", crop, "elapsed", time.Since(start))
	return f
}
