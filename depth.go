package pica

// DepthStep is the amount the depth sequencer advances per finished
// primitive.
const DepthStep = float32(1.0 / 20000.0)

// DepthSequencer hands out distinct, deterministic depth values to
// sequentially issued 2D primitives, so overlapping draws order by
// painter's algorithm without a depth test. Every End() moves the value
// down by DepthStep.
//
// There is no floor or wrap: a long-running session eventually exhausts
// usable float32 precision. Callers that draw per frame should reset
// with Set at frame start.
type DepthSequencer struct {
	depth float32
}

// Set sets the depth value directly.
func (d *DepthSequencer) Set(depth float32) { d.depth = depth }

// Value returns the depth stamped into the next 2D vertex.
func (d *DepthSequencer) Value() float32 { return d.depth }

// Advance moves the depth down by DepthStep. Called once per End().
func (d *DepthSequencer) Advance() { d.depth -= DepthStep }
