// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"errors"

	"github.com/gogpu/uvmap"
	"github.com/gogpu/uvmap/settings"
)

// MapperImageParam is the effect parameter the map texture is bound to.
const MapperImageParam = "mapperImage"

// Errors returned by filters.
var (
	// ErrClosed is returned when a closed filter is updated or rendered.
	ErrClosed = errors.New("filter: filter is closed")

	// ErrNilGraphics is returned when a filter is created without a host.
	ErrNilGraphics = errors.New("filter: nil graphics")

	// ErrUnknownKind is returned by New for an unregistered kind ID.
	ErrUnknownKind = errors.New("filter: unknown kind")
)

// Texture is a map texture owned by a filter.
type Texture interface {
	Destroy()
}

// Effect is a compiled remap effect owned by a filter.
type Effect interface {
	Destroy()
}

// Graphics is the host graphics context.
//
// Enter and Leave bracket a graphics section. Filters create and destroy
// textures and effects only inside a section.
type Graphics interface {
	Enter()
	Leave()
	CreateMapTexture(f *uvmap.Field) (Texture, error)
	CreateEffect() (Effect, error)
}

// Source is the host side of one render call.
//
// ProcessFilterBegin reports whether the frame can be processed; when it
// returns false the filter skips the frame. Otherwise the filter binds its
// map texture with SetTextureParam and finishes with ProcessFilterEnd.
type Source interface {
	ProcessFilterBegin() bool
	SetTextureParam(effect Effect, name string, tex Texture)
	ProcessFilterEnd(effect Effect)
}

// Kind describes a filter type the host can instantiate.
type Kind interface {
	// ID is the stable identifier stored by hosts.
	ID() string
	// Name is the display name.
	Name() string
	Defaults() settings.Settings
	Properties() []settings.Property
	Create(g Graphics, s settings.Settings) (Filter, error)
}

// Filter is one instance of a Kind.
type Filter interface {
	Name() string
	// Settings returns the clamped settings in effect.
	Settings() settings.Settings
	// Update regenerates the map from s and replaces the texture.
	Update(s settings.Settings) error
	// Render processes one frame. A frame the source declines is skipped
	// without error.
	Render(src Source) error
	// Close releases the texture and the effect. Safe to call multiple times.
	Close() error
}
