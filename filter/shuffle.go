// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"sync"

	"github.com/gogpu/uvmap"
	"github.com/gogpu/uvmap/settings"
)

// Registered kind IDs.
const (
	ShuffleID   = "uvmap-cell-shuffle"
	UnshuffleID = "uvmap-cell-unshuffle"
)

func init() {
	Register(cellKind{id: ShuffleID, name: "UV Mapper (cell shuffle)"})
	Register(cellKind{id: UnshuffleID, name: "UV Mapper (cell unshuffle)", reverse: true})
}

// cellKind generates forward maps, or reverse maps when reverse is set.
type cellKind struct {
	id      string
	name    string
	reverse bool
}

func (k cellKind) ID() string                      { return k.id }
func (k cellKind) Name() string                    { return k.name }
func (k cellKind) Defaults() settings.Settings     { return settings.Defaults() }
func (k cellKind) Properties() []settings.Property { return settings.Properties() }

func (k cellKind) generate(s settings.Settings) (*uvmap.Field, error) {
	if k.reverse {
		return uvmap.GenerateReverse(s.Seed(), s.Geometry(), uvmap.Region{})
	}
	return uvmap.Generate(s.Seed(), s.Geometry())
}

// Create builds the effect and the first map texture.
func (k cellKind) Create(g Graphics, s settings.Settings) (Filter, error) {
	if g == nil {
		return nil, ErrNilGraphics
	}
	s = s.Clamp()

	field, err := k.generate(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", k.id, err)
	}

	g.Enter()
	defer g.Leave()

	effect, err := g.CreateEffect()
	if err != nil {
		return nil, fmt.Errorf("%s: create effect: %w", k.id, err)
	}
	tex, err := g.CreateMapTexture(field)
	if err != nil {
		effect.Destroy()
		return nil, fmt.Errorf("%s: create map texture: %w", k.id, err)
	}

	uvmap.Logger().Info("filter: created", "kind", k.id, "settings", s.String())
	return &cellFilter{kind: k, g: g, effect: effect, tex: tex, settings: s}, nil
}

// cellFilter is a Filter backed by one effect and one map texture.
type cellFilter struct {
	kind cellKind
	g    Graphics

	mu       sync.Mutex
	effect   Effect
	tex      Texture
	settings settings.Settings
	closed   bool
}

func (f *cellFilter) Name() string { return f.kind.name }

func (f *cellFilter) Settings() settings.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings
}

// Update creates the new texture before destroying the old one, so a
// failed update leaves the filter rendering with its previous map.
func (f *cellFilter) Update(s settings.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	s = s.Clamp()

	field, err := f.kind.generate(s)
	if err != nil {
		return fmt.Errorf("%s: %w", f.kind.id, err)
	}

	f.g.Enter()
	defer f.g.Leave()

	tex, err := f.g.CreateMapTexture(field)
	if err != nil {
		uvmap.Logger().Warn("filter: update failed, keeping previous map", "kind", f.kind.id, "err", err)
		return fmt.Errorf("%s: create map texture: %w", f.kind.id, err)
	}
	f.tex.Destroy()
	f.tex = tex
	f.settings = s

	uvmap.Logger().Debug("filter: updated", "kind", f.kind.id, "settings", s.String())
	return nil
}

func (f *cellFilter) Render(src Source) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if !src.ProcessFilterBegin() {
		return nil
	}
	src.SetTextureParam(f.effect, MapperImageParam, f.tex)
	src.ProcessFilterEnd(f.effect)
	return nil
}

func (f *cellFilter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true

	f.g.Enter()
	defer f.g.Leave()

	f.tex.Destroy()
	f.effect.Destroy()
	f.tex, f.effect = nil, nil

	uvmap.Logger().Debug("filter: closed", "kind", f.kind.id)
	return nil
}
