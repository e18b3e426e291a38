// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// Errors returned by GPU resource creation.
var (
	// ErrTextureCreation is returned when a map texture cannot be created
	// or uploaded.
	ErrTextureCreation = errors.New("gpu: texture creation failed")

	// ErrShaderCompile is returned when the remap shader fails to compile
	// or its pipeline cannot be built.
	ErrShaderCompile = errors.New("gpu: shader compilation failed")

	// ErrNilDevice is returned when a Device has no HAL device or queue.
	ErrNilDevice = errors.New("gpu: nil device")

	// ErrReleased is returned when using a destroyed resource.
	ErrReleased = errors.New("gpu: resource has been released")
)

// Device is the graphics context the remap resources live on.
//
// Enter and Leave bracket a graphics section. The section is exclusive:
// a second Enter blocks until the first Leave. Every method that creates
// or destroys GPU objects expects to run inside a section, so callers write
//
//	dev.Enter()
//	defer dev.Leave()
type Device struct {
	mu     sync.Mutex
	device hal.Device
	queue  hal.Queue
}

// NewDevice wraps a HAL device and the queue used for texture uploads.
func NewDevice(device hal.Device, queue hal.Queue) *Device {
	return &Device{device: device, queue: queue}
}

// NewDeviceFromProvider wraps the device shared by a host application.
// Besides gpucontext.DeviceProvider, the provider must implement
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
func NewDeviceFromProvider(provider gpucontext.DeviceProvider) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: provider does not expose HAL types", ErrNilDevice)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: provider HalDevice is not hal.Device", ErrNilDevice)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: provider HalQueue is not hal.Queue", ErrNilDevice)
	}
	return NewDevice(device, queue), nil
}

// Enter starts a graphics section.
func (d *Device) Enter() { d.mu.Lock() }

// Leave ends the graphics section started by Enter.
func (d *Device) Leave() { d.mu.Unlock() }

// HAL returns the wrapped device and queue.
func (d *Device) HAL() (hal.Device, hal.Queue) {
	return d.device, d.queue
}

func (d *Device) check() error {
	if d == nil || d.device == nil || d.queue == nil {
		return ErrNilDevice
	}
	return nil
}
