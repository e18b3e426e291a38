// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpu

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/uvmap"
	"github.com/gogpu/wgpu/hal"
)

// mapTextureUsage lets a map texture be uploaded, sampled and copied back.
const mapTextureUsage = gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopySrc

// Compile-time checks.
var (
	_ gpucontext.Texture        = (*MapTexture)(nil)
	_ gpucontext.TextureUpdater = (*MapTexture)(nil)
)

// MapTexture is a field uploaded as an RG32Float texture.
type MapTexture struct {
	dev    *Device
	tex    hal.Texture
	view   hal.TextureView
	width  int
	height int

	released atomic.Bool
}

// CreateMapTexture creates a texture the size of f and uploads it.
// Call inside a graphics section.
func (d *Device) CreateMapTexture(f *uvmap.Field) (*MapTexture, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if f == nil || f.Len() == 0 {
		return nil, fmt.Errorf("%w: empty field", ErrTextureCreation)
	}

	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label: "uvmap_mapper_image",
		Size: hal.Extent3D{
			Width:              uint32(f.Width()),  //nolint:gosec // bounded by settings
			Height:             uint32(f.Height()), //nolint:gosec // bounded by settings
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        uvmap.TextureFormat,
		Usage:         mapTextureUsage,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d: %w", ErrTextureCreation, f.Width(), f.Height(), err)
	}

	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "uvmap_mapper_image_view",
		Format:        uvmap.TextureFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("%w: view: %w", ErrTextureCreation, err)
	}

	t := &MapTexture{
		dev:    d,
		tex:    tex,
		view:   view,
		width:  f.Width(),
		height: f.Height(),
	}
	if err := t.UpdateData(f.Bytes()); err != nil {
		t.Destroy()
		return nil, err
	}

	uvmap.Logger().Info("gpu: map texture created", "width", t.width, "height", t.height)
	return t, nil
}

// Width returns the texture width in pixels.
func (t *MapTexture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *MapTexture) Height() int { return t.height }

// View returns the texture view bound as mapperImage.
func (t *MapTexture) View() hal.TextureView { return t.view }

// UpdateData uploads RG32Float texel data covering the whole texture.
func (t *MapTexture) UpdateData(data []byte) error {
	if t.released.Load() {
		return ErrReleased
	}
	want := t.width * t.height * uvmap.BytesPerTexel
	if len(data) != want {
		return fmt.Errorf("%w: data is %d bytes, want %d", ErrTextureCreation, len(data), want)
	}

	err := t.dev.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: t.tex, MipLevel: 0},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(t.width * uvmap.BytesPerTexel), //nolint:gosec // bounded by settings
			RowsPerImage: uint32(t.height),                      //nolint:gosec // bounded by settings
		},
		&hal.Extent3D{Width: uint32(t.width), Height: uint32(t.height), DepthOrArrayLayers: 1}, //nolint:gosec // bounded by settings
	)
	if err != nil {
		return fmt.Errorf("%w: upload: %w", ErrTextureCreation, err)
	}
	return nil
}

// Upload replaces the texture contents with f, which must have the
// texture's size.
func (t *MapTexture) Upload(f *uvmap.Field) error {
	if f.Width() != t.width || f.Height() != t.height {
		return fmt.Errorf("%w: field %dx%d, texture %dx%d",
			ErrTextureCreation, f.Width(), f.Height(), t.width, t.height)
	}
	return t.UpdateData(f.Bytes())
}

// Destroy releases the texture. Call inside a graphics section.
// Destroy is safe to call multiple times.
func (t *MapTexture) Destroy() {
	if !t.released.CompareAndSwap(false, true) {
		return
	}
	if t.view != nil {
		t.dev.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		t.dev.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}

// Released reports whether Destroy has been called.
func (t *MapTexture) Released() bool {
	return t.released.Load()
}
