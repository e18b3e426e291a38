// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package filter runs cell-shuffle maps as video filters inside a host
// application.
//
// A host supplies a Graphics context and, for every frame, a Source. A
// Filter owns one map texture and one remap effect. The texture is created
// with the filter, replaced on every Update and released on Close:
//
//	kind, _ := filter.Lookup(filter.ShuffleID)
//	f, err := kind.Create(host, settings.Defaults())
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	// per frame
//	if err := f.Render(frameSource); err != nil {
//	    return err
//	}
//
// Two kinds are registered: ShuffleID scrambles frames and UnshuffleID
// restores them from the same seed. CPU renders frames with uvmap.Remap and
// needs no GPU. On builds without the nogpu tag, GPU renders through the
// gpu package.
package filter
