// Package recording provides a driver.Device that records every call as
// a typed command instead of touching hardware.
//
// The recorded command stream is the verification surface for the
// pipeline's tests: attribute ordering, flush boundaries and texture
// uploads are asserted against it. It also serves headless use, where
// the stream can be inspected or replayed.
//
// The device registers itself under the name "recording":
//
//	import _ "github.com/gogpu/pica/driver/recording"
//
//	dev, _ := driver.New("recording")
package recording

import (
	"fmt"

	"github.com/gogpu/pica/driver"
)

func init() {
	driver.Register("recording", func() driver.Device {
		return New()
	})
}

// shaderContract is the built-in vertex shader's input layout: the
// component count of each attribute register, in order. Only a prefix of
// this layout may be bound; the fourth register exists but is inactive
// by default.
var shaderContract = []driver.AttrDesc{
	{Name: "position", Components: 3},
	{Name: "texcoord", Components: 2},
	{Name: "color", Components: 4},
	{Name: "normal", Components: 3},
}

// Device records all driver calls. It implements driver.Device.
//
// Device is not safe for concurrent use, matching the driver contract.
type Device struct {
	commands    []Command
	textures    map[driver.TextureHandle][]byte
	nextHandle  driver.TextureHandle
	initialized bool
}

// New creates an empty recording device.
func New() *Device {
	return &Device{
		commands: make([]Command, 0, 64),
		textures: make(map[driver.TextureHandle][]byte),
	}
}

func (d *Device) record(c Command) { d.commands = append(d.commands, c) }

// Init implements driver.Device.
func (d *Device) Init(width, height int) error {
	d.initialized = true
	d.record(Command{Op: OpInit, Width: width, Height: height})
	return nil
}

// Close implements driver.Device.
func (d *Device) Close() {
	d.initialized = false
	d.record(Command{Op: OpClose})
}

// BindProgram implements driver.Device. It validates the schema against
// the built-in shader contract: a non-empty prefix of the contract's
// registers, each with the contract's name and component count.
func (d *Device) BindProgram(attrs []driver.AttrDesc) error {
	if !d.initialized {
		return driver.ErrNotInitialized
	}
	if len(attrs) == 0 || len(attrs) > len(shaderContract) {
		return fmt.Errorf("recording: %d attributes declared, shader has %d registers: %w",
			len(attrs), len(shaderContract), driver.ErrSchemaMismatch)
	}
	for i, a := range attrs {
		want := shaderContract[i]
		if a.Name != want.Name || a.Components != want.Components {
			return fmt.Errorf("recording: attribute %d is %s:%d, shader expects %s:%d: %w",
				i, a.Name, a.Components, want.Name, want.Components, driver.ErrSchemaMismatch)
		}
	}
	d.record(Command{Op: OpBindProgram, Attrs: append([]driver.AttrDesc(nil), attrs...)})
	return nil
}

// SetProjection implements driver.Device.
func (d *Device) SetProjection(m driver.Mat4) {
	d.record(Command{Op: OpSetProjection, Matrix: m})
}

// SetModelView implements driver.Device.
func (d *Device) SetModelView(m driver.Mat4) {
	d.record(Command{Op: OpSetModelView, Matrix: m})
}

// DrawBegin implements driver.Device.
func (d *Device) DrawBegin(t driver.Topology) {
	d.record(Command{Op: OpDrawBegin, Topology: t})
}

// SendAttribute implements driver.Device.
func (d *Device) SendAttribute(x, y, z, w float32) {
	d.record(Command{Op: OpSendAttribute, Attr: [4]float32{x, y, z, w}})
}

// DrawEnd implements driver.Device.
func (d *Device) DrawEnd() {
	d.record(Command{Op: OpDrawEnd})
}

// CreateTexture implements driver.Device. Handles are sequential and
// never reused, so tests can tell resources apart across a whole run.
func (d *Device) CreateTexture(width, height int, format driver.TexelFormat) (driver.TextureHandle, error) {
	if !d.initialized {
		return 0, driver.ErrNotInitialized
	}
	d.nextHandle++
	h := d.nextHandle
	d.textures[h] = nil
	d.record(Command{Op: OpCreateTexture, Texture: h, Format: format, Width: width, Height: height})
	return h, nil
}

// UploadTexture implements driver.Device. The tiled payload is retained
// so tests can assert on the exact bytes the hardware would receive.
func (d *Device) UploadTexture(h driver.TextureHandle, tiled []byte) error {
	if _, ok := d.textures[h]; !ok {
		return fmt.Errorf("recording: upload to unknown texture %d: %w", h, driver.ErrNotAvailable)
	}
	d.textures[h] = append([]byte(nil), tiled...)
	d.record(Command{Op: OpUploadTexture, Texture: h, DataLen: len(tiled)})
	return nil
}

// BindTexture implements driver.Device.
func (d *Device) BindTexture(h driver.TextureHandle) {
	d.record(Command{Op: OpBindTexture, Texture: h})
}

// UnbindTexture implements driver.Device.
func (d *Device) UnbindTexture() {
	d.record(Command{Op: OpUnbindTexture})
}

// DeleteTexture implements driver.Device.
func (d *Device) DeleteTexture(h driver.TextureHandle) {
	delete(d.textures, h)
	d.record(Command{Op: OpDeleteTexture, Texture: h})
}

// SelectScreen implements driver.Device.
func (d *Device) SelectScreen(s driver.Screen) {
	d.record(Command{Op: OpSelectScreen, Screen: s})
}

// EnableSecondaryScreen implements driver.Device.
func (d *Device) EnableSecondaryScreen() {
	d.record(Command{Op: OpEnableSecondaryScreen})
}

// Clear implements driver.Device.
func (d *Device) Clear(r, g, b, a uint8) {
	d.record(Command{Op: OpClear, Color: [4]uint8{r, g, b, a}})
}

// Viewport implements driver.Device.
func (d *Device) Viewport(x, y, width, height int) {
	d.record(Command{Op: OpViewport, X: x, Y: y, Width: width, Height: height})
}

// Commands returns all recorded commands in submission order.
func (d *Device) Commands() []Command { return d.commands }

// Reset discards the recorded command stream. Retained texture payloads
// and handle numbering are kept, so a test can reset between setup and
// the calls under inspection.
func (d *Device) Reset() { d.commands = d.commands[:0] }

// Filter returns the recorded commands with the given op, in order.
func (d *Device) Filter(op Op) []Command {
	var out []Command
	for _, c := range d.commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// SentAttributes returns the values of every SendAttribute call, in order.
func (d *Device) SentAttributes() [][4]float32 {
	var out [][4]float32
	for _, c := range d.commands {
		if c.Op == OpSendAttribute {
			out = append(out, c.Attr)
		}
	}
	return out
}

// TextureData returns the last payload uploaded to the texture, or nil
// if the texture is unknown or nothing was uploaded.
func (d *Device) TextureData(h driver.TextureHandle) []byte {
	return d.textures[h]
}

// TextureCount returns the number of live (created, not deleted)
// textures.
func (d *Device) TextureCount() int { return len(d.textures) }
