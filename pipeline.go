package pica

import "github.com/gogpu/pica/driver"

// PrimitiveMode selects how Begin/End brackets assemble submitted
// vertices.
type PrimitiveMode uint8

const (
	// Lines draws two-vertex primitives.
	Lines PrimitiveMode = iota + 1

	// Triangles draws independent three-vertex primitives.
	Triangles

	// Quads draws four-vertex primitives, emulated on the strip
	// topology by duplicating the diagonal's vertices in strip order.
	Quads
)

// Attribute slot indices, in the order the shader expects them per
// vertex. Only the first activeAttrs slots are sent; the normal slot is
// tracked but inactive by default.
type attrSlot int

const (
	slotPosition attrSlot = iota
	slotTexCoord
	slotColor
	slotNormal
	slotCount
)

// assembler is the per-primitive state of the attribute-reordering
// machine. Callers submit attributes in any order; the machine detects
// vertex boundaries implicitly (the same slot written twice in a row
// means a new vertex has begun) and flushes completed attribute sets to
// the device in shader order.
//
// The phase counter's meaning depends on the mode: a 0/1 toggle for
// Lines, a 0..3 cycle for Quads (see flush), unused for Triangles.
type assembler struct {
	mode  PrimitiveMode
	phase int

	pending [slotCount]bool
	last    [slotCount]Vec4

	// backup is a snapshot of all slots taken at quad phase 2 and
	// replayed at phase 3 to duplicate the triangle-sharing diagonal.
	// It never persists across primitives.
	backup [slotCount]Vec4

	// active is the number of slots actually sent to the shader.
	active int
}

// reset prepares the assembler for a new Begin/End bracket: phase 0,
// default slot values, nothing pending.
func (a *assembler) reset(mode PrimitiveMode) {
	a.mode = mode
	a.phase = 0
	for i := range a.pending {
		a.pending[i] = false
	}
	a.last[slotPosition] = Vec4{}
	a.last[slotTexCoord] = Vec4{}
	a.last[slotColor] = V4(1, 1, 1, 1)
	a.last[slotNormal] = V4(0, 0, 1, 0)
}

// Begin opens an immediate-mode primitive. It selects the device
// topology (Triangles map to an independent triangle list; Lines and
// Quads to the continuous strip topology), uploads the projection
// matrix for the selected screen and the current model-view matrix, and
// resets the attribute slots to their defaults.
//
// Begin/End brackets must not nest or interleave; that is a caller
// contract, not checked at runtime.
func (r *Renderer) Begin(mode PrimitiveMode) {
	switch mode {
	case Triangles:
		r.dev.DrawBegin(driver.TopologyTriangles)
	default:
		r.dev.DrawBegin(driver.TopologyTriangleStrip)
	}

	proj := r.stack.ProjectionFor(r.secondary)
	r.dev.SetProjection(proj.deviceOrder())
	r.dev.SetModelView(r.stack.ModelView().deviceOrder())

	r.asm.reset(mode)
	Logger().Debug("primitive begin", "mode", mode)
}

// End forces one final flush of whatever is pending, closes the device
// primitive and advances the depth sequencer.
func (r *Renderer) End() {
	r.flush()
	r.dev.DrawEnd()
	r.depth.Advance()
	Logger().Debug("primitive end", "depth", r.depth.Value())
}

// setAttr stores one attribute value, flushing the completed vertex
// first when the same active slot is submitted twice in a row.
func (r *Renderer) setAttr(slot attrSlot, v Vec4) {
	if r.asm.pending[slot] && int(slot) < r.asm.active {
		r.flush()
	}
	r.asm.last[slot] = v
	r.asm.pending[slot] = true
}

// flush handles one completed vertex according to the mode's policy.
//
// Triangles send the current set immediately. Lines do the same, with a
// 0/1 phase toggle tracking which endpoint was emitted. Quads cycle
// phase 0->1->2->3: phases 0 and 1 send normally; phase 2 snapshots the
// slots instead of sending, starting the shared diagonal; phase 3 sends
// the snapshot and then the current set, completing the quad's second
// triangle in strip order.
func (r *Renderer) flush() {
	a := &r.asm
	switch a.mode {
	case Lines:
		a.phase ^= 1
		r.send(&a.last)
	case Quads:
		switch a.phase {
		case 2:
			a.backup = a.last
			for i := range a.pending {
				a.pending[i] = false
			}
		case 3:
			r.send(&a.backup)
			r.send(&a.last)
		default:
			r.send(&a.last)
		}
		a.phase = (a.phase + 1) % 4
	default:
		r.send(&a.last)
	}
}

// send emits the active slots of one attribute set to the device in
// shader order and clears their pending flags.
func (r *Renderer) send(set *[slotCount]Vec4) {
	for i := 0; i < r.asm.active; i++ {
		v := set[i]
		r.dev.SendAttribute(v.X, v.Y, v.Z, v.W)
		r.asm.pending[i] = false
	}
}

// Vertex2i submits a vertex position from two ints, with z = 0.
func (r *Renderer) Vertex2i(x, y int) {
	r.setAttr(slotPosition, V4(float32(x), float32(y), 0, 0))
}

// Vertex2f submits a 2D vertex position. The z component is stamped
// with the depth sequencer's current value, giving sequentially issued
// 2D primitives their painter's-algorithm ordering.
func (r *Renderer) Vertex2f(x, y float32) {
	r.setAttr(slotPosition, V4(x, y, r.depth.Value(), 0))
}

// Vertex3f submits a 3D vertex position.
func (r *Renderer) Vertex3f(x, y, z float32) {
	r.setAttr(slotPosition, V4(x, y, z, 0))
}

// TexCoord2f submits a texture coordinate.
func (r *Renderer) TexCoord2f(u, v float32) {
	r.setAttr(slotTexCoord, V4(u, v, 0, 0))
}

// Normal3f submits a vertex normal. The normal slot is tracked but not
// sent to the shader unless the active attribute count includes it.
func (r *Renderer) Normal3f(x, y, z float32) {
	r.setAttr(slotNormal, V4(x, y, z, 0))
}

// Color3f submits an opaque vertex color from float channels.
func (r *Renderer) Color3f(red, green, blue float32) {
	r.setAttr(slotColor, V4(red, green, blue, 0))
}

// Color4f submits a vertex color from float channels.
func (r *Renderer) Color4f(red, green, blue, alpha float32) {
	r.setAttr(slotColor, V4(red, green, blue, alpha))
}

// Color4ub submits a vertex color from byte channels, normalized to
// [0, 1].
func (r *Renderer) Color4ub(red, green, blue, alpha uint8) {
	r.setAttr(slotColor, V4(
		float32(red)/255,
		float32(green)/255,
		float32(blue)/255,
		float32(alpha)/255,
	))
}
