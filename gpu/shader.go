// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
)

// Binding slots of the remap shader, group 0.
const (
	bindingSource        = 0
	bindingSourceSampler = 1
	bindingMapperImage   = 2
)

// MapperImageParam is the shader parameter name of the map texture.
const MapperImageParam = "mapperImage"

//go:embed shaders/uv_mapping.wgsl
var uvMappingShaderSource string

// ShaderSource returns the WGSL source of the remap shader.
func ShaderSource() string {
	return uvMappingShaderSource
}

// CompileWGSL compiles WGSL source to SPIR-V words.
func CompileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: SPIR-V length %d is not a multiple of 4", ErrShaderCompile, len(spirvBytes))
	}

	// SPIR-V is a stream of little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return words, nil
}
