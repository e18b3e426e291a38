// Package uvmap generates deterministic cell-shuffle coordinate maps.
//
// # Overview
//
// A map divides a picture into rectangular cells, permutes the cells with
// a seeded pseudo-random shuffle, and records for every output pixel the
// normalized source coordinate it should sample. Sampling an image through
// the map (on the GPU with a two-channel float texture, or on the CPU with
// Remap) produces a "shuffled tiles" picture. The reverse map restores it.
//
// # Quick Start
//
//	import "github.com/gogpu/uvmap"
//
//	g := uvmap.Geometry{Width: 1920, Height: 1080, CellWidth: 16, CellHeight: 16}
//	seed := uvmap.DeriveSeedString("my secret")
//
//	field, err := uvmap.Generate(seed, g)
//	if err != nil {
//		return err
//	}
//	shuffled := uvmap.Remap(field, src, uvmap.Nearest)
//
//	back, _ := uvmap.GenerateReverse(seed, g, uvmap.Region{})
//	restored := uvmap.Remap(back, shuffled, uvmap.Nearest)
//
// # Seeds
//
// DeriveSeed turns an arbitrary token into a 32-bit seed: short decimal
// tokens are used as numbers, everything else is hashed. The same token
// always produces the same permutation, on every platform.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left corner of the source
//   - U increases right, V increases down
//   - Coordinates address pixel centers: pixel x maps to (x+0.5)/width
//
// # Concurrency
//
// Generation is a pure function. Independent calls may run in parallel, and
// WithWorkers splits a single call across goroutines without changing the
// result.
//
// # Sub-packages
//
//   - gpu: uploads a Field as an RG32Float texture and compiles the remap shader
//   - filter: video-filter lifecycle (create, update, render, close) over a host
//   - settings: user-facing configuration, presets and property descriptions
package uvmap

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
