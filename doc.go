// Package pica bridges legacy immediate-mode vertex calls to a fixed
// three-attribute GPU pipeline with a tiled texture unit.
//
// # Overview
//
// Client code draws in the classic fixed-function style: begin a
// primitive, submit positions, colors, texture coordinates and normals
// in any order, end the primitive. The underlying hardware accepts none
// of that directly; its vertex shader wants exactly two matrix uniforms
// and a fixed, ordered set of float attributes per vertex, and its
// texture unit wants texel memory pre-tiled in a Z-order layout.
//
// pica closes that gap with four pieces:
//
//   - a matrix-stack transform state machine (Matrices)
//   - an attribute-reordering assembler that detects vertex boundaries
//     implicitly and emulates quads on the strip topology (Begin,
//     Vertex*, Color*, TexCoord2f, End)
//   - a monotonic depth sequencer giving sequentially issued 2D draws a
//     painter's-algorithm ordering (SetDepth, DepthStep)
//   - a texture tiling codec and a sparse id table in front of the
//     native texture unit (LoadTexture, SetTexture, UnloadTexture)
//
// Everything else is 1:1 forwarding to the native device, abstracted by
// the driver package.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pica"
//	    _ "github.com/gogpu/pica/driver/recording"
//	)
//
//	r, err := pica.Open("recording")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	r.Matrices().SetMode(pica.Projection)
//	r.Matrices().Ortho(0, 400, 0, 240, 0, 1)
//
//	r.Begin(pica.Quads)
//	r.Color4ub(255, 0, 0, 255)
//	r.Vertex2f(10, 10)
//	r.Vertex2f(110, 10)
//	r.Vertex2f(110, 110)
//	r.Vertex2f(10, 110)
//	r.End()
//
// # Execution Model
//
// Everything is single-threaded and synchronous: every call completes
// before returning, and no state is locked. Begin/End brackets must not
// nest or interleave and Push/Pop must balance; these are caller
// contracts, not runtime-checked errors. Validation failures (bad
// texture dimensions, unsupported formats) log a warning and return the
// zero id; nothing in this package panics or retries.
//
// # Logging
//
// The package is silent by default. Call SetLogger with a *slog.Logger
// to enable diagnostics.
package pica
