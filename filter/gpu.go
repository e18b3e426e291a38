// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package filter

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/uvmap"
	"github.com/gogpu/uvmap/gpu"
	"github.com/gogpu/wgpu/hal"
)

// GPU is a Graphics host backed by a gpu.Device.
type GPU struct {
	Device *gpu.Device
	// Target is the format of the render pass the effect draws into.
	Target gputypes.TextureFormat
	// Mode selects the source sampler filtering.
	Mode uvmap.Interpolation
}

// NewGPU returns a host drawing into target-formatted passes on dev.
func NewGPU(dev *gpu.Device, target gputypes.TextureFormat, mode uvmap.Interpolation) *GPU {
	return &GPU{Device: dev, Target: target, Mode: mode}
}

// NewGPUFromProvider returns a host on the device shared by provider,
// drawing into passes of the provider's surface format.
func NewGPUFromProvider(provider gpucontext.DeviceProvider, mode uvmap.Interpolation) (*GPU, error) {
	dev, err := gpu.NewDeviceFromProvider(provider)
	if err != nil {
		return nil, err
	}
	return NewGPU(dev, provider.SurfaceFormat(), mode), nil
}

// Enter starts a graphics section on the device.
func (g *GPU) Enter() { g.Device.Enter() }

// Leave ends the section started by Enter.
func (g *GPU) Leave() { g.Device.Leave() }

// CreateMapTexture uploads f as an RG32Float texture.
func (g *GPU) CreateMapTexture(f *uvmap.Field) (Texture, error) {
	tex, err := g.Device.CreateMapTexture(f)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

// CreateEffect compiles the remap pipeline.
func (g *GPU) CreateEffect() (Effect, error) {
	e, err := g.Device.CreateEffect(g.Target, g.Mode)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// PassSource draws a filter into an open render pass, reading the source
// frame from View.
//
// The bind group built for the frame stays alive until Release, which the
// host calls once the command buffer has been submitted.
type PassSource struct {
	Pass hal.RenderPassEncoder
	View hal.TextureView

	mapper *gpu.MapTexture
	group  hal.BindGroup
	effect *gpu.Effect
	err    error
}

// NewPassSource returns a source drawing view into pass.
func NewPassSource(pass hal.RenderPassEncoder, view hal.TextureView) *PassSource {
	return &PassSource{Pass: pass, View: view}
}

// ProcessFilterBegin declines frames without a pass or a source view.
func (s *PassSource) ProcessFilterBegin() bool {
	s.mapper = nil
	s.err = nil
	return s.Pass != nil && s.View != nil
}

// SetTextureParam records the map bound as MapperImageParam.
func (s *PassSource) SetTextureParam(_ Effect, name string, tex Texture) {
	if name != MapperImageParam {
		return
	}
	if t, ok := tex.(*gpu.MapTexture); ok {
		s.mapper = t
	}
}

// ProcessFilterEnd binds the source and the map and records the draw.
// A failure is reported by Err.
func (s *PassSource) ProcessFilterEnd(effect Effect) {
	e, ok := effect.(*gpu.Effect)
	if !ok {
		s.err = fmt.Errorf("filter: effect %T is not a GPU effect", effect)
		return
	}
	s.Release()

	group, err := e.Bind(s.View, s.mapper)
	if err != nil {
		s.err = err
		return
	}
	e.Draw(s.Pass, group)
	s.group, s.effect = group, e
}

// Err returns the error of the last ProcessFilterEnd.
func (s *PassSource) Err() error { return s.err }

// Release destroys the bind group of the last draw.
func (s *PassSource) Release() {
	if s.group != nil {
		s.effect.ReleaseBindGroup(s.group)
		s.group, s.effect = nil, nil
	}
}
