// Package driver defines the native GPU device interface the pica
// pipeline draws through, and a registry for device implementations.
//
// The pipeline targets one fixed hardware path: a vertex shader with two
// matrix uniforms and up to four float vertex attributes, an immediate
// per-attribute submission entry point, and a texture unit that requires
// texel memory in a tiled layout. Device implementations forward these
// calls 1:1 to the platform's graphics library; they contain no drawing
// logic of their own.
//
// Devices register themselves in init() using Register(), following the
// database/sql driver pattern, and are created by name with New():
//
//	import _ "github.com/gogpu/pica/driver/recording"
//
//	dev, err := driver.New("recording")
//
// All Device methods are synchronous and must be called from a single
// goroutine; the pipeline provides no locking.
package driver
