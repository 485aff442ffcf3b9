package driver

import "errors"

// Common driver errors.
var (
	// ErrNotAvailable is returned when a requested driver is not available.
	ErrNotAvailable = errors.New("driver: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("driver: not initialized")

	// ErrSchemaMismatch is returned by BindProgram when the declared
	// attribute schema does not match the built-in vertex shader contract.
	ErrSchemaMismatch = errors.New("driver: attribute schema mismatch")

	// ErrTextureSize is returned by CreateTexture when the dimensions are
	// outside what the texture unit accepts.
	ErrTextureSize = errors.New("driver: invalid texture size")
)

// Topology selects how the device assembles submitted vertices into
// primitives. The pipeline exposes only the two topologies the fixed
// hardware path supports.
type Topology uint8

const (
	// TopologyTriangles assembles every three vertices into an
	// independent triangle.
	TopologyTriangles Topology = iota + 1

	// TopologyTriangleStrip assembles each vertex after the first two
	// into a triangle with the previous two vertices.
	TopologyTriangleStrip
)

// Screen identifies one of the two display surfaces served by the device.
type Screen uint8

const (
	// ScreenTop is the primary display surface.
	ScreenTop Screen = iota

	// ScreenBottom is the secondary display surface.
	ScreenBottom
)

// TexelFormat is a native texture memory format understood by the
// texture unit. Texel data must already be in the tiled layout produced
// by the swizzle codec before UploadTexture is called.
type TexelFormat uint8

const (
	TexelRGBA8 TexelFormat = iota + 1
	TexelRGB8
	TexelRGBA5551
	TexelRGB565
	TexelRGBA4
	TexelLA8
	TexelHILO8
	TexelL8
	TexelA8
	TexelLA4
	TexelL4
	TexelA4
	TexelETC1
	TexelETC1A4
)

// BitsPerTexel returns the storage size of one texel in bits, or 0 for
// an unknown format.
func (f TexelFormat) BitsPerTexel() int {
	switch f {
	case TexelRGBA8:
		return 32
	case TexelRGB8:
		return 24
	case TexelRGBA5551, TexelRGB565, TexelRGBA4, TexelLA8, TexelHILO8:
		return 16
	case TexelL8, TexelA8, TexelLA4:
		return 8
	case TexelL4, TexelA4, TexelETC1, TexelETC1A4:
		return 4
	}
	return 0
}

// Mat4 is a 4x4 matrix flattened into the device's uniform register
// order. The pipeline performs the reordering from its own matrix layout;
// devices upload the values verbatim.
type Mat4 [16]float32

// TextureHandle is an opaque handle to a native texture resource.
// The zero value is never a valid handle.
type TextureHandle uint64

// AttrDesc declares one vertex input attribute: its shader-facing name
// and the number of float components submitted per vertex.
type AttrDesc struct {
	Name       string
	Components int
}

// Device is the native GPU entry-point surface the pipeline draws
// through. All calls are synchronous: each operation completes before it
// returns, matching the single-threaded execution model of the pipeline.
//
// Devices are registered via Register() and created by name via New(),
// or constructed directly and passed to pica.New.
type Device interface {
	// Init prepares the device: render targets, the built-in shader
	// program, and default render state. It must be called before any
	// other method.
	Init(width, height int) error

	// Close releases all device resources. The device must not be used
	// after Close.
	Close()

	// BindProgram declares the ordered vertex attribute schema and
	// validates it against the built-in shader's input layout.
	// Returns ErrSchemaMismatch if the schema does not match.
	BindProgram(attrs []AttrDesc) error

	// SetProjection uploads the projection matrix uniform.
	SetProjection(m Mat4)

	// SetModelView uploads the model-view matrix uniform.
	SetModelView(m Mat4)

	// DrawBegin opens an immediate-mode primitive with the given topology.
	DrawBegin(t Topology)

	// SendAttribute submits one 4-component vertex attribute. Attributes
	// must arrive in schema order, one full set per vertex.
	SendAttribute(x, y, z, w float32)

	// DrawEnd closes the current immediate-mode primitive.
	DrawEnd()

	// CreateTexture allocates a native texture resource.
	CreateTexture(width, height int, format TexelFormat) (TextureHandle, error)

	// UploadTexture copies tiled texel data into the texture's memory.
	UploadTexture(h TextureHandle, tiled []byte) error

	// BindTexture makes the texture the active sampling source.
	BindTexture(h TextureHandle)

	// UnbindTexture disables texture sampling; fragments take the
	// vertex color only.
	UnbindTexture()

	// DeleteTexture releases the native texture resource.
	DeleteTexture(h TextureHandle)

	// SelectScreen directs subsequent draws to the given display surface.
	SelectScreen(s Screen)

	// EnableSecondaryScreen sets up the secondary display surface for
	// output. The primary surface is set up by Init.
	EnableSecondaryScreen()

	// Clear fills the current screen's color and depth buffers.
	Clear(r, g, b, a uint8)

	// Viewport sets the transformation from normalized device
	// coordinates to window coordinates.
	Viewport(x, y, width, height int)
}
