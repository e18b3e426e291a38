// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package filter

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/uvmap"
	"github.com/gogpu/uvmap/gpu"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

func createNoopDevice(t *testing.T) (hal.Device, hal.Queue) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

// recordingPass captures draw calls.
type recordingPass struct {
	hal.RenderPassEncoder
	draws int
	group hal.BindGroup
}

func (p *recordingPass) SetPipeline(hal.RenderPipeline) {}

func (p *recordingPass) SetBindGroup(_ uint32, group hal.BindGroup, _ []uint32) { p.group = group }

func (p *recordingPass) Draw(_, _, _, _ uint32) { p.draws++ }

func TestGPUFilter(t *testing.T) {
	device, queue := createNoopDevice(t)
	host := NewGPU(gpu.NewDevice(device, queue), gputypes.TextureFormatBGRA8Unorm, uvmap.Nearest)

	f, err := New(ShuffleID, host, smallSettings("42"))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	view, err := device.CreateTextureView(nil, &hal.TextureViewDescriptor{})
	if err != nil {
		t.Fatal(err)
	}
	pass := &recordingPass{}
	src := NewPassSource(pass, view)

	if err := f.Render(src); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if src.Err() != nil {
		t.Fatalf("PassSource.Err() = %v", src.Err())
	}
	if pass.draws != 1 || pass.group == nil {
		t.Errorf("pass recorded %d draws, group %v", pass.draws, pass.group)
	}
	src.Release()

	if err := f.Update(smallSettings("43")); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if err := f.Render(src); err != nil || src.Err() != nil {
		t.Fatalf("Render after Update = %v / %v", err, src.Err())
	}
	if pass.draws != 2 {
		t.Errorf("draws = %d, want 2", pass.draws)
	}
	src.Release()

	if err := f.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
}

func TestPassSourceDeclinesWithoutView(t *testing.T) {
	device, queue := createNoopDevice(t)
	host := NewGPU(gpu.NewDevice(device, queue), gputypes.TextureFormatBGRA8Unorm, uvmap.Bilinear)
	f, err := New(UnshuffleID, host, smallSettings("0"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	pass := &recordingPass{}
	if err := f.Render(NewPassSource(pass, nil)); err != nil {
		t.Fatal(err)
	}
	if pass.draws != 0 {
		t.Errorf("draws = %d, want 0", pass.draws)
	}
}

func TestPassSourceRejectsForeignEffect(t *testing.T) {
	src := NewPassSource(&recordingPass{}, nil)
	src.ProcessFilterEnd(&cpuEffect{})
	if src.Err() == nil {
		t.Error("Err() = nil for a CPU effect")
	}
}

// halProvider is a gpucontext.DeviceProvider exposing HAL types.
type halProvider struct {
	gpucontext.DeviceProvider
	device hal.Device
	queue  hal.Queue
}

func (p halProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }
func (p halProvider) HalDevice() any                        { return p.device }
func (p halProvider) HalQueue() any                         { return p.queue }

func TestNewGPUFromProvider(t *testing.T) {
	device, queue := createNoopDevice(t)

	host, err := NewGPUFromProvider(halProvider{device: device, queue: queue}, uvmap.Nearest)
	if err != nil {
		t.Fatalf("NewGPUFromProvider() = %v", err)
	}
	if host.Target != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Target = %v, want the surface format", host.Target)
	}

	f, err := New(ShuffleID, host, smallSettings("5"))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := NewGPUFromProvider(halProvider{}, uvmap.Nearest); err == nil {
		t.Error("NewGPUFromProvider without a device should fail")
	}
}
