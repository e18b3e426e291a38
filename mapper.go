package uvmap

import "time"

// Generate builds the cell-shuffle map for g.
//
// The image is divided into cells of g.CellWidth x g.CellHeight pixels, the
// cells are permuted with seed (see Shuffle), and each output pixel (x, y)
// receives the normalized coordinate of the source pixel it shows. Pixels in
// the trailing partial column or row are stretched by CellWidth/LastWidth
// (CellHeight/LastHeight) so the narrower strip samples a full cell's span.
//
// The result is a pure function of its arguments: two calls with the same
// seed and geometry return bit-identical fields, with or without WithWorkers.
// Every coordinate lies strictly inside (0, 1): where the stretch would
// reach past the image edge, the source pixel is pinned to the last column
// or row.
func Generate(seed uint32, g Geometry, opts ...Option) (*Field, error) {
	gr, err := ShuffledGrid(seed, g)
	if err != nil {
		return nil, err
	}
	return expandForward(gr, applyOptions(opts)), nil
}

// GenerateString derives the seed from token with DeriveSeedString and
// calls Generate.
func GenerateString(token string, g Geometry, opts ...Option) (*Field, error) {
	return Generate(DeriveSeedString(token), g, opts...)
}

// expandForward writes one coordinate per pixel for the shuffled grid gr.
func expandForward(gr *Grid, o options) *Field {
	start := time.Now()
	f := newField(gr.Width, gr.Height)

	// Scale factors for the trailing column and row. 1 when the image
	// divides evenly.
	lastScaleX := float32(gr.CellWidth) / float32(gr.LastWidth)
	lastScaleY := float32(gr.CellHeight) / float32(gr.LastHeight)
	width := float32(gr.Width)
	height := float32(gr.Height)

	o.forEachRowBand(gr.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			scaleY := float32(1)
			if y >= gr.LastY {
				scaleY = lastScaleY
			}
			cy := y / gr.CellHeight
			ly := y % gr.CellHeight
			row := f.data[y*gr.Width : (y+1)*gr.Width]

			for x := range row {
				scaleX := float32(1)
				if x >= gr.LastX {
					scaleX = lastScaleX
				}
				m := gr.At(x/gr.CellWidth, cy)
				newX := cellOffset(m.X*gr.CellWidth, x%gr.CellWidth, scaleX, gr.Width)
				newY := cellOffset(m.Y*gr.CellHeight, ly, scaleY, gr.Height)
				row[x] = UV{
					U: (newX + 0.5) / width,
					V: (newY + 0.5) / height,
				}
			}
		}
	})

	Logger().Debug("uvmap: generated map",
		"width", gr.Width, "height", gr.Height,
		"cells", gr.Len(), "elapsed", time.Since(start))
	return f
}

// cellOffset returns origin + local*scale as a pixel position, pinned to
// the last pixel of the image.
//
// The stretched last strip can reach past the image edge when the cell it
// maps to is itself the partial one. Pinning keeps the coordinate on the
// edge texel, which is what a clamp-to-edge sampler would return anyway.
func cellOffset(origin, local int, scale float32, limit int) float32 {
	// The explicit conversion rounds the product to float32 before the add,
	// so the result is the same on platforms that fuse multiply-add.
	v := float32(origin) + float32(float32(local)*scale)
	if maxV := float32(limit - 1); v > maxV {
		return maxV
	}
	return v
}
