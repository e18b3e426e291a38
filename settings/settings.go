// Package settings holds the user-facing configuration of a cell-shuffle
// filter: the seed token, the frame size and the cell size.
package settings

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/uvmap"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Limits accepted by Clamp.
const (
	MinDimension = 1
	MaxWidth     = 3840
	MaxHeight    = 2160
	MaxCellSize  = 2048
)

// Settings is the configuration of one filter instance.
type Settings struct {
	SeedToken string `yaml:"seed" toml:"seed"`
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	CellSizeX int    `yaml:"cell_size_x" toml:"cell_size_x"`
	CellSizeY int    `yaml:"cell_size_y" toml:"cell_size_y"`
}

// Defaults returns the built-in settings: seed "0", 1920x1080 frames and
// 16x16 cells.
func Defaults() Settings {
	var s Settings
	if err := yaml.Unmarshal(defaultsYAML, &s); err != nil {
		panic(fmt.Sprintf("settings: parsing embedded defaults: %v", err))
	}
	return s
}

// Clamp returns s with every dimension forced into its accepted range.
// The seed token is never changed: any text is a valid seed.
func (s Settings) Clamp() Settings {
	s.Width = clampInt(s.Width, MinDimension, MaxWidth)
	s.Height = clampInt(s.Height, MinDimension, MaxHeight)
	s.CellSizeX = clampInt(s.CellSizeX, MinDimension, MaxCellSize)
	s.CellSizeY = clampInt(s.CellSizeY, MinDimension, MaxCellSize)
	return s
}

// Geometry returns the frame and cell size of the clamped settings.
func (s Settings) Geometry() uvmap.Geometry {
	c := s.Clamp()
	return uvmap.Geometry{
		Width:      c.Width,
		Height:     c.Height,
		CellWidth:  c.CellSizeX,
		CellHeight: c.CellSizeY,
	}
}

// Seed derives the shuffle seed from the seed token.
func (s Settings) Seed() uint32 {
	return uvmap.DeriveSeedString(s.SeedToken)
}

// String returns a compact description used in logs.
func (s Settings) String() string {
	return fmt.Sprintf("seed=%q %dx%d cell=%dx%d", s.SeedToken, s.Width, s.Height, s.CellSizeX, s.CellSizeY)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
