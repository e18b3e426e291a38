// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

// Package gpu uploads uvmap fields to the GPU and runs the remap pass.
//
// The data flow is:
//
//	uvmap.Field (CPU) -> RG32Float texture ("mapperImage") -> fragment pass
//
// # Architecture
//
// Device wraps a wgpu HAL device and queue and owns the graphics section
// (Enter/Leave) that every create, update and destroy runs inside.
//
//   - MapTexture holds one uploaded field and implements gpucontext.Texture
//   - Effect holds the compiled remap shader, its pipeline and samplers
//   - Effect.Bind pairs a source view with a MapTexture for one draw
//
// # Usage
//
//	dev := gpu.NewDevice(halDevice, halQueue)
//
//	field, _ := uvmap.Generate(seed, g)
//	tex, err := dev.CreateMapTexture(field)
//	if err != nil {
//		return err
//	}
//	defer tex.Destroy()
//
//	effect, err := dev.CreateEffect(gputypes.TextureFormatBGRA8Unorm)
//	if err != nil {
//		return err
//	}
//	defer effect.Destroy()
//
//	group, _ := effect.Bind(sourceView, tex)
//	effect.Draw(pass, group)
//
// # Thread Safety
//
// Device serializes resource creation and destruction. MapTexture and
// Effect are not safe for concurrent mutation.
package gpu
