package uvmap

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gputypes"
)

// TextureFormat is the GPU format of Field.Bytes: two 32-bit floats per texel.
const TextureFormat = gputypes.TextureFormatRG32Float

// BytesPerTexel is the size of one UV pair in Field.Bytes.
const BytesPerTexel = 8

// UV is a normalized texture coordinate. (0,0) is the top-left corner of
// the source image and (1,1) the bottom-right corner.
type UV struct {
	U, V float32
}

// Field is a dense, row-major table of UV coordinates, one per output pixel.
//
// A Field is produced fresh by Generate or GenerateReverse and is never
// modified by this package afterwards. Reconfiguring means generating a
// new Field and dropping the old one.
type Field struct {
	width  int
	height int
	data   []UV
}

func newField(width, height int) *Field {
	return &Field{
		width:  width,
		height: height,
		data:   make([]UV, width*height),
	}
}

// Width returns the field width in pixels.
func (f *Field) Width() int { return f.width }

// Height returns the field height in pixels.
func (f *Field) Height() int { return f.height }

// Len returns Width*Height.
func (f *Field) Len() int { return len(f.data) }

// At returns the coordinate stored for pixel (x, y).
func (f *Field) At(x, y int) UV {
	return f.data[y*f.width+x]
}

// Data returns the underlying row-major slice.
// The slice is shared with the field and must not be modified.
func (f *Field) Data() []UV {
	return f.data
}

// Bytes returns the field encoded as RG32Float texel data
// (little-endian U then V for each pixel), ready for texture upload.
func (f *Field) Bytes() []byte {
	buf := make([]byte, len(f.data)*BytesPerTexel)
	for i, uv := range f.data {
		off := i * BytesPerTexel
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(uv.U))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(uv.V))
	}
	return buf
}

// WriteTo writes Bytes to w. It implements io.WriterTo.
func (f *Field) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}

// Equal reports whether f and other have the same size and bit-identical
// coordinates.
func (f *Field) Equal(other *Field) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.width != other.width || f.height != other.height {
		return false
	}
	for i, uv := range f.data {
		o := other.data[i]
		if math.Float32bits(uv.U) != math.Float32bits(o.U) ||
			math.Float32bits(uv.V) != math.Float32bits(o.V) {
			return false
		}
	}
	return true
}

// Image renders the field as a 16-bit preview image: red is U, green is V.
// Useful for eyeballing a map; the float data is quantized.
func (f *Field) Image() *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, f.width, f.height))
	for y := range f.height {
		for x := range f.width {
			uv := f.data[y*f.width+x]
			img.SetNRGBA64(x, y, color.NRGBA64{
				R: quantize16(uv.U),
				G: quantize16(uv.V),
				B: 0,
				A: math.MaxUint16,
			})
		}
	}
	return img
}

// quantize16 maps [0, 1] to [0, 65535], clamping outside values.
func quantize16(v float32) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return math.MaxUint16
	}
	return uint16(v*math.MaxUint16 + 0.5)
}
