package uvmap

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestFieldBytesLayout(t *testing.T) {
	f := newField(2, 1)
	f.data[0] = UV{U: 0.25, V: 0.75}
	f.data[1] = UV{U: 1, V: 0.5}

	b := f.Bytes()
	if len(b) != 2*BytesPerTexel {
		t.Fatalf("len(Bytes()) = %d, want %d", len(b), 2*BytesPerTexel)
	}
	want := []float32{0.25, 0.75, 1, 0.5}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
		if got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestFieldWriteTo(t *testing.T) {
	f := newField(3, 2)
	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() = %v", err)
	}
	if n != int64(3*2*BytesPerTexel) || buf.Len() != int(n) {
		t.Errorf("WriteTo() wrote %d bytes (buffer %d), want %d", n, buf.Len(), 3*2*BytesPerTexel)
	}
}

func TestFieldEqual(t *testing.T) {
	a := newField(2, 2)
	b := newField(2, 2)
	if !a.Equal(b) {
		t.Error("zero fields should be equal")
	}

	b.data[3].V = 0.5
	if a.Equal(b) {
		t.Error("fields differing in one value reported equal")
	}

	if a.Equal(newField(4, 1)) {
		t.Error("fields of different shape reported equal")
	}

	var nilField *Field
	if !nilField.Equal(nil) {
		t.Error("nil.Equal(nil) = false")
	}
	if a.Equal(nil) {
		t.Error("a.Equal(nil) = true")
	}
}

func TestFieldEqualIsBitwise(t *testing.T) {
	a := newField(1, 1)
	b := newField(1, 1)
	a.data[0].U = float32(math.Copysign(0, -1))
	if a.Equal(b) {
		t.Error("-0 and +0 should differ bitwise")
	}
}

func TestFieldImage(t *testing.T) {
	f := newField(2, 1)
	f.data[0] = UV{U: 0, V: 1}
	f.data[1] = UV{U: 0.5, V: 2}

	img := f.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Image() bounds = %v", img.Bounds())
	}
	c := img.NRGBA64At(0, 0)
	if c.R != 0 || c.G != math.MaxUint16 || c.A != math.MaxUint16 {
		t.Errorf("pixel 0 = %+v", c)
	}
	c = img.NRGBA64At(1, 0)
	if c.R != 32768 || c.G != math.MaxUint16 {
		t.Errorf("pixel 1 = %+v, want R=32768 G=65535", c)
	}
}

func TestQuantize16(t *testing.T) {
	tests := []struct {
		in   float32
		want uint16
	}{
		{-1, 0},
		{0, 0},
		{1, 65535},
		{1.5, 65535},
		{0.5, 32768},
	}
	for _, tt := range tests {
		if got := quantize16(tt.in); got != tt.want {
			t.Errorf("quantize16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
