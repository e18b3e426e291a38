// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/uvmap"
	"github.com/gogpu/wgpu/hal"
)

// Effect is the compiled remap pass: shader, pipeline and source sampler.
//
// The pipeline renders a full-screen triangle into a target of the format
// given to CreateEffect. Each draw needs a bind group from Bind.
type Effect struct {
	dev *Device

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
	sampler    hal.Sampler
}

// CreateEffect compiles the remap shader and builds its pipeline.
// The source image is sampled with mode (nearest or bilinear); the map
// itself is always read texel-exact. Call inside a graphics section.
func (d *Device) CreateEffect(target gputypes.TextureFormat, mode uvmap.Interpolation) (*Effect, error) {
	if err := d.check(); err != nil {
		return nil, err
	}

	spirv, err := CompileWGSL(uvMappingShaderSource)
	if err != nil {
		return nil, err
	}

	e := &Effect{dev: d}
	if err := e.build(target, spirv, mode); err != nil {
		e.Destroy()
		return nil, err
	}
	uvmap.Logger().Info("gpu: remap effect created", "target", target, "sampling", mode)
	return e, nil
}

func (e *Effect) build(target gputypes.TextureFormat, spirv []uint32, mode uvmap.Interpolation) error {
	device := e.dev.device

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "uvmap_remap_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("%w: module: %w", ErrShaderCompile, err)
	}
	e.shader = shader

	bindLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "uvmap_remap_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    bindingSource,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    bindingSourceSampler,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
			{
				Binding:    bindingMapperImage,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					// RG32Float is not filterable; the shader uses textureLoad.
					SampleType:    gputypes.TextureSampleTypeUnfilterableFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: bind group layout: %w", ErrShaderCompile, err)
	}
	e.bindLayout = bindLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "uvmap_remap_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{bindLayout},
	})
	if err != nil {
		return fmt.Errorf("%w: pipeline layout: %w", ErrShaderCompile, err)
	}
	e.pipeLayout = pipeLayout

	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "uvmap_remap_pipeline",
		Layout: pipeLayout,
		Vertex: hal.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &hal.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{Format: target, WriteMask: gputypes.ColorWriteMaskAll},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("%w: pipeline: %w", ErrShaderCompile, err)
	}
	e.pipeline = pipeline

	sampler, err := device.CreateSampler(samplerDescriptor(mode))
	if err != nil {
		return fmt.Errorf("%w: sampler: %w", ErrShaderCompile, err)
	}
	e.sampler = sampler
	return nil
}

// samplerDescriptor converts the shared clamp-to-edge presets into a HAL
// sampler description.
func samplerDescriptor(mode uvmap.Interpolation) *hal.SamplerDescriptor {
	base := gputypes.DefaultSamplerDescriptor()
	if mode == uvmap.Bilinear {
		base = gputypes.LinearSamplerDescriptor()
	}
	return &hal.SamplerDescriptor{
		Label:        "uvmap_source_sampler",
		AddressModeU: base.AddressModeU,
		AddressModeV: base.AddressModeV,
		AddressModeW: base.AddressModeW,
		MagFilter:    base.MagFilter,
		MinFilter:    base.MinFilter,
		MipmapFilter: gputypes.FilterModeNearest,
		LodMinClamp:  base.LodMinClamp,
		LodMaxClamp:  base.LodMaxClamp,
		Anisotropy:   base.MaxAnisotropy,
	}
}

// Bind creates the bind group pairing source with the map texture.
// The caller destroys the group with ReleaseBindGroup after the frame.
func (e *Effect) Bind(source hal.TextureView, mapper *MapTexture) (hal.BindGroup, error) {
	if e.pipeline == nil {
		return nil, ErrReleased
	}
	if mapper == nil || mapper.Released() {
		return nil, fmt.Errorf("%s: %w", MapperImageParam, ErrReleased)
	}

	group, err := e.dev.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "uvmap_remap_bind_group",
		Layout: e.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: bindingSource, Resource: gputypes.TextureViewBinding{TextureView: source.NativeHandle()}},
			{Binding: bindingSourceSampler, Resource: gputypes.SamplerBinding{Sampler: e.sampler.NativeHandle()}},
			{Binding: bindingMapperImage, Resource: gputypes.TextureViewBinding{TextureView: mapper.View().NativeHandle()}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create remap bind group: %w", err)
	}
	return group, nil
}

// ReleaseBindGroup destroys a group returned by Bind.
func (e *Effect) ReleaseBindGroup(group hal.BindGroup) {
	if group != nil {
		e.dev.device.DestroyBindGroup(group)
	}
}

// Draw records the remap draw into an open render pass.
func (e *Effect) Draw(pass hal.RenderPassEncoder, group hal.BindGroup) {
	pass.SetPipeline(e.pipeline)
	pass.SetBindGroup(0, group, nil)
	pass.Draw(3, 1, 0, 0)
}

// Destroy releases all GPU objects in reverse creation order.
// Safe to call multiple times. Call inside a graphics section.
func (e *Effect) Destroy() {
	device := e.dev.device
	if device == nil {
		return
	}
	if e.sampler != nil {
		device.DestroySampler(e.sampler)
		e.sampler = nil
	}
	if e.pipeline != nil {
		device.DestroyRenderPipeline(e.pipeline)
		e.pipeline = nil
	}
	if e.pipeLayout != nil {
		device.DestroyPipelineLayout(e.pipeLayout)
		e.pipeLayout = nil
	}
	if e.bindLayout != nil {
		device.DestroyBindGroupLayout(e.bindLayout)
		e.bindLayout = nil
	}
	if e.shader != nil {
		device.DestroyShaderModule(e.shader)
		e.shader = nil
	}
}
