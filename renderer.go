package pica

import (
	"fmt"

	"github.com/gogpu/pica/driver"
)

// Default framebuffer dimensions used when WithScreenSize is not given.
const (
	defaultScreenWidth  = 400
	defaultScreenHeight = 240
)

// defaultSchema is the vertex input schema bound against the built-in
// shader program. The normal register exists in the shader but is
// inactive by default; only the first activeAttrs entries are submitted
// per vertex.
var defaultSchema = []driver.AttrDesc{
	{Name: "position", Components: 3},
	{Name: "texcoord", Components: 2},
	{Name: "color", Components: 4},
	{Name: "normal", Components: 3},
}

// Option configures a Renderer during creation.
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	width, height  int
	activeAttrs    int
	defaultTexture bool
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		width:          defaultScreenWidth,
		height:         defaultScreenHeight,
		activeAttrs:    3,
		defaultTexture: true,
	}
}

// WithScreenSize sets the primary framebuffer dimensions passed to the
// device at Init.
func WithScreenSize(width, height int) Option {
	return func(o *rendererOptions) {
		o.width = width
		o.height = height
	}
}

// WithActiveAttributes sets how many attribute slots are submitted per
// vertex, in slot order. The default is 3 (position, texcoord, color);
// 4 additionally activates the normal slot. Values outside [1, 4] are
// clamped.
func WithActiveAttributes(n int) Option {
	return func(o *rendererOptions) {
		if n < 1 {
			n = 1
		}
		if n > int(slotCount) {
			n = int(slotCount)
		}
		o.activeAttrs = n
	}
}

// WithoutDefaultTexture skips loading the built-in 8x8 white texture.
// Shapes drawn without a bound texture then depend entirely on the
// device's untextured path.
func WithoutDefaultTexture() Option {
	return func(o *rendererOptions) {
		o.defaultTexture = false
	}
}

// Renderer owns all pipeline state: the matrix stack, the depth
// sequencer, the attribute assembler, the texture table and the device
// it draws through. There are no package-level globals; two Renderers
// on two devices are fully independent.
//
// Renderer is not safe for concurrent use. Correctness additionally
// depends on caller discipline: Begin/End brackets must not nest or
// interleave, and Push/Pop must balance.
type Renderer struct {
	dev   driver.Device
	stack *MatrixStack
	depth DepthSequencer
	asm   assembler

	textures       texTable
	defaultTexture TextureID

	// secondary selects which projection matrix Begin uploads.
	secondary bool

	width, height int
}

// New creates a Renderer on the given device: it initializes the
// device, binds the built-in attribute schema, and loads the default
// white texture (unless disabled).
func New(dev driver.Device, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := dev.Init(o.width, o.height); err != nil {
		return nil, fmt.Errorf("pica: device init: %w", err)
	}
	if err := dev.BindProgram(defaultSchema[:o.activeAttrs]); err != nil {
		dev.Close()
		return nil, fmt.Errorf("pica: bind program: %w", err)
	}

	r := &Renderer{
		dev:    dev,
		stack:  NewMatrixStack(),
		width:  o.width,
		height: o.height,
	}
	r.asm.active = o.activeAttrs

	if o.defaultTexture {
		white := make([]byte, 64)
		for i := range white {
			white[i] = 255
		}
		r.defaultTexture = r.LoadTexture(white, 8, 8, PixelFormatGrayscale)
		if r.defaultTexture == 0 {
			Logger().Warn("failed to load default texture")
		}
	}

	Logger().Info("renderer initialized", "width", o.width, "height", o.height,
		"attributes", o.activeAttrs)
	return r, nil
}

// Open creates a Renderer on a device resolved by name from the driver
// registry.
func Open(name string, opts ...Option) (*Renderer, error) {
	dev, err := driver.New(name)
	if err != nil {
		return nil, err
	}
	return New(dev, opts...)
}

// Close unloads the default texture and releases the device.
// The Renderer must not be used after Close.
func (r *Renderer) Close() {
	if r.defaultTexture != 0 {
		r.UnloadTexture(r.defaultTexture)
		r.defaultTexture = 0
	}
	r.dev.Close()
}

// Matrices returns the renderer's matrix stack. The assembler reads it
// at every Begin; edits between Begin/End brackets take effect on the
// next Begin.
func (r *Renderer) Matrices() *MatrixStack { return r.stack }

// SetDepth sets the depth sequencer directly, typically to reset it at
// frame start.
func (r *Renderer) SetDepth(depth float32) { r.depth.Set(depth) }

// CurrentDepth returns the depth value stamped into the next 2D vertex.
func (r *Renderer) CurrentDepth() float32 { return r.depth.Value() }

// SetScreen directs subsequent draws to the given display surface and
// selects which projection matrix Begin uploads.
func (r *Renderer) SetScreen(s driver.Screen) {
	r.secondary = s == driver.ScreenBottom
	r.dev.SelectScreen(s)
}

// CurrentScreen returns the display surface draws currently target.
func (r *Renderer) CurrentScreen() driver.Screen {
	if r.secondary {
		return driver.ScreenBottom
	}
	return driver.ScreenTop
}

// EnableSecondaryScreen sets up the secondary display surface for
// output. The primary surface is set up by New.
func (r *Renderer) EnableSecondaryScreen() {
	r.dev.EnableSecondaryScreen()
}

// ClearBackground clears the current screen's color and depth buffers.
func (r *Renderer) ClearBackground(red, green, blue, alpha uint8) {
	r.dev.Clear(red, green, blue, alpha)
}

// Viewport sets the transformation from normalized device coordinates
// to window coordinates. Forwarded to the device; not matrix state.
func (r *Renderer) Viewport(x, y, width, height int) {
	r.dev.Viewport(x, y, width, height)
}

// FramebufferWidth returns the primary framebuffer width.
func (r *Renderer) FramebufferWidth() int { return r.width }

// FramebufferHeight returns the primary framebuffer height.
func (r *Renderer) FramebufferHeight() int { return r.height }

// PushMatrix saves the current matrix, logging a warning when the stack
// is full. See MatrixStack.Push for the redirect semantics; use
// Matrices().Push to observe the error directly.
func (r *Renderer) PushMatrix() {
	if err := r.stack.Push(); err != nil {
		Logger().Warn("matrix push rejected", "err", err, "depth", r.stack.Depth())
	}
}

// PopMatrix restores the most recently pushed matrix.
func (r *Renderer) PopMatrix() { r.stack.Pop() }
