// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"image"
	"sync"

	"github.com/gogpu/uvmap"
)

// CPU is a Graphics host that renders with uvmap.Remap.
type CPU struct {
	// Mode selects how source pixels are sampled.
	Mode uvmap.Interpolation
	// Options are passed to uvmap.Remap.
	Options []uvmap.Option

	mu sync.Mutex
}

// Enter starts a graphics section.
func (c *CPU) Enter() { c.mu.Lock() }

// Leave ends the section started by Enter.
func (c *CPU) Leave() { c.mu.Unlock() }

// CreateMapTexture wraps f. The field is not copied.
func (c *CPU) CreateMapTexture(f *uvmap.Field) (Texture, error) {
	return &CPUTexture{field: f}, nil
}

// CreateEffect returns an effect sampling with c.Mode.
func (c *CPU) CreateEffect() (Effect, error) {
	return &cpuEffect{mode: c.Mode, opts: c.Options}, nil
}

// CPUTexture is a map held in memory.
type CPUTexture struct {
	field *uvmap.Field
}

// Field returns the map, or nil after Destroy.
func (t *CPUTexture) Field() *uvmap.Field { return t.field }

// Destroy drops the map.
func (t *CPUTexture) Destroy() { t.field = nil }

type cpuEffect struct {
	mode uvmap.Interpolation
	opts []uvmap.Option
}

func (e *cpuEffect) Destroy() {}

// ImageSource feeds one image through a filter created on a CPU host.
// After Render, Output holds the filtered frame.
type ImageSource struct {
	Input  image.Image
	Output *image.NRGBA

	mapper *CPUTexture
}

// NewImageSource returns a source for img.
func NewImageSource(img image.Image) *ImageSource {
	return &ImageSource{Input: img}
}

// ProcessFilterBegin declines empty inputs.
func (s *ImageSource) ProcessFilterBegin() bool {
	s.mapper = nil
	return s.Input != nil && !s.Input.Bounds().Empty()
}

// SetTextureParam records the map bound as MapperImageParam.
func (s *ImageSource) SetTextureParam(_ Effect, name string, tex Texture) {
	if name != MapperImageParam {
		return
	}
	if t, ok := tex.(*CPUTexture); ok {
		s.mapper = t
	}
}

// ProcessFilterEnd remaps Input into Output.
func (s *ImageSource) ProcessFilterEnd(effect Effect) {
	e, ok := effect.(*cpuEffect)
	if !ok || s.mapper == nil || s.mapper.field == nil {
		return
	}
	s.Output = uvmap.Remap(s.mapper.field, s.Input, e.mode, e.opts...)
}
