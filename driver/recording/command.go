package recording

import (
	"fmt"
	"strings"

	"github.com/gogpu/pica/driver"
)

// Op identifies the type of a recorded command.
// Each op corresponds to one driver.Device method.
type Op uint8

const (
	OpInit Op = iota
	OpClose
	OpBindProgram
	OpSetProjection
	OpSetModelView
	OpDrawBegin
	OpSendAttribute
	OpDrawEnd
	OpCreateTexture
	OpUploadTexture
	OpBindTexture
	OpUnbindTexture
	OpDeleteTexture
	OpSelectScreen
	OpEnableSecondaryScreen
	OpClear
	OpViewport
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpInit:                  "Init",
	OpClose:                 "Close",
	OpBindProgram:           "BindProgram",
	OpSetProjection:         "SetProjection",
	OpSetModelView:          "SetModelView",
	OpDrawBegin:             "DrawBegin",
	OpSendAttribute:         "SendAttribute",
	OpDrawEnd:               "DrawEnd",
	OpCreateTexture:         "CreateTexture",
	OpUploadTexture:         "UploadTexture",
	OpBindTexture:           "BindTexture",
	OpUnbindTexture:         "UnbindTexture",
	OpDeleteTexture:         "DeleteTexture",
	OpSelectScreen:          "SelectScreen",
	OpEnableSecondaryScreen: "EnableSecondaryScreen",
	OpClear:                 "Clear",
	OpViewport:              "Viewport",
}

// String returns the name of the op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Command is one recorded device call. Only the fields relevant to the
// op are populated; the rest stay zero.
type Command struct {
	Op Op

	// DrawBegin
	Topology driver.Topology

	// SendAttribute
	Attr [4]float32

	// SetProjection / SetModelView
	Matrix driver.Mat4

	// Texture ops
	Texture driver.TextureHandle
	Format  driver.TexelFormat
	DataLen int

	// Init / CreateTexture / Viewport
	X, Y, Width, Height int

	// SelectScreen
	Screen driver.Screen

	// Clear
	Color [4]uint8

	// BindProgram
	Attrs []driver.AttrDesc
}

// String renders the command in a compact single-line form, useful in
// test failure messages and demo output.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Op.String())
	switch c.Op {
	case OpInit, OpCreateTexture:
		fmt.Fprintf(&b, "(%dx%d)", c.Width, c.Height)
	case OpDrawBegin:
		fmt.Fprintf(&b, "(topology=%d)", c.Topology)
	case OpSendAttribute:
		fmt.Fprintf(&b, "(%g, %g, %g, %g)", c.Attr[0], c.Attr[1], c.Attr[2], c.Attr[3])
	case OpUploadTexture:
		fmt.Fprintf(&b, "(handle=%d, %d bytes)", c.Texture, c.DataLen)
	case OpBindTexture, OpDeleteTexture:
		fmt.Fprintf(&b, "(handle=%d)", c.Texture)
	case OpSelectScreen:
		fmt.Fprintf(&b, "(screen=%d)", c.Screen)
	case OpClear:
		fmt.Fprintf(&b, "(%d, %d, %d, %d)", c.Color[0], c.Color[1], c.Color[2], c.Color[3])
	case OpViewport:
		fmt.Fprintf(&b, "(%d, %d, %d, %d)", c.X, c.Y, c.Width, c.Height)
	}
	return b.String()
}
