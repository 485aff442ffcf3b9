package pica

import (
	"errors"
	"math"
)

// StackCapacity is the maximum number of matrices the push/pop stack
// holds.
const StackCapacity = 32

// ErrStackOverflow is returned by Push when the stack is full. The push
// is rejected and the stack is left unchanged.
var ErrStackOverflow = errors.New("pica: matrix stack overflow")

// degToRad is the number of radians per degree.
const degToRad = math.Pi / 180

// MatrixMode selects which matrix the stack's editing operations target.
type MatrixMode uint8

const (
	// Modelview targets the model-view matrix (or the transform matrix
	// while a push bracket is open, see Push).
	Modelview MatrixMode = iota

	// Projection targets the projection matrix for the primary screen.
	Projection

	// ProjectionSecondary targets the projection matrix for the
	// secondary screen.
	ProjectionSecondary
)

// matrixTarget identifies the matrix "current" points at. It differs
// from MatrixMode because Push can redirect the modelview mode's edits
// into the transform matrix.
type matrixTarget uint8

const (
	targetModelview matrixTarget = iota
	targetProjection
	targetProjectionSecondary
	targetTransform
)

// MatrixStack holds the transform state: one matrix per mode, an
// accumulation matrix for push brackets, and a bounded stack for
// Push/Pop. All editing operations apply to the current matrix selected
// by SetMode (and redirected by Push while in Modelview mode).
//
// MatrixStack is not safe for concurrent use.
type MatrixStack struct {
	mode   MatrixMode
	target matrixTarget

	modelview           Matrix
	projection          Matrix
	projectionSecondary Matrix
	transform           Matrix

	// transformPending is set while a Modelview push bracket is open:
	// edits accumulate in transform, separate from the base modelview.
	transformPending bool

	stack   [StackCapacity]Matrix
	counter int
}

// NewMatrixStack returns a stack with every matrix, including the saved
// slots, set to identity, in Modelview mode.
func NewMatrixStack() *MatrixStack {
	s := &MatrixStack{}
	s.modelview = Identity()
	s.projection = Identity()
	s.projectionSecondary = Identity()
	s.transform = Identity()
	for i := range s.stack {
		s.stack[i] = Identity()
	}
	return s
}

// current returns a pointer to the matrix editing operations apply to.
// The pointer is always live; target never refers to transient storage.
func (s *MatrixStack) current() *Matrix {
	switch s.target {
	case targetProjection:
		return &s.projection
	case targetProjectionSecondary:
		return &s.projectionSecondary
	case targetTransform:
		return &s.transform
	default:
		return &s.modelview
	}
}

// SetMode repoints the current matrix at the matrix owned by mode.
// The transform matrix is not directly selectable; it is reached by
// pushing while in Modelview mode.
func (s *MatrixStack) SetMode(mode MatrixMode) {
	s.mode = mode
	switch mode {
	case Projection:
		s.target = targetProjection
	case ProjectionSecondary:
		s.target = targetProjectionSecondary
	default:
		s.target = targetModelview
	}
}

// Mode returns the currently selected matrix mode.
func (s *MatrixStack) Mode() MatrixMode { return s.mode }

// Depth returns the number of matrices saved on the stack.
func (s *MatrixStack) Depth() int { return s.counter }

// Push saves the current matrix onto the stack.
//
// In Modelview mode the current matrix is first redirected to the
// transform matrix, so edits inside the bracket accumulate separately
// from the base modelview; Pop restores the redirect once the stack
// empties.
//
// Push returns ErrStackOverflow, without modifying any state, when the
// stack already holds StackCapacity matrices.
func (s *MatrixStack) Push() error {
	if s.counter >= StackCapacity {
		return ErrStackOverflow
	}

	if s.mode == Modelview {
		s.transformPending = true
		s.target = targetTransform
	}

	s.stack[s.counter] = *s.current()
	s.counter++
	return nil
}

// Pop restores the current matrix from the top stack slot. Popping an
// empty stack is a no-op. When the stack empties in Modelview mode, the
// current matrix returns to the base modelview and the transform
// redirect is cleared.
func (s *MatrixStack) Pop() {
	if s.counter > 0 {
		s.counter--
		*s.current() = s.stack[s.counter]
	}

	if s.counter == 0 && s.mode == Modelview {
		s.target = targetModelview
		s.transformPending = false
	}
}

// LoadIdentity resets the current matrix to identity.
func (s *MatrixStack) LoadIdentity() {
	*s.current() = Identity()
}

// Translate multiplies the current matrix by a translation matrix.
// The new transform pre-multiplies the existing one.
func (s *MatrixStack) Translate(x, y, z float32) {
	cur := s.current()
	*cur = Translate(x, y, z).Multiply(*cur)
}

// Rotate multiplies the current matrix by a rotation matrix built from
// an axis and an angle in degrees. The axis is normalized before the
// rotation is constructed. The new transform pre-multiplies the
// existing one.
func (s *MatrixStack) Rotate(angleDeg, x, y, z float32) {
	cur := s.current()
	*cur = Rotate(x, y, z, angleDeg*degToRad).Multiply(*cur)
}

// Scale multiplies the current matrix by a scaling matrix.
// The new transform pre-multiplies the existing one.
func (s *MatrixStack) Scale(x, y, z float32) {
	cur := s.current()
	*cur = Scale(x, y, z).Multiply(*cur)
}

// Mult multiplies the current matrix by m, given in column-major order.
// Unlike Translate/Rotate/Scale, the new transform post-multiplies the
// existing one; the asymmetry is load-bearing for composition order.
func (s *MatrixStack) Mult(f [16]float32) {
	cur := s.current()
	*cur = cur.Multiply(FromColumns(f))
}

// Frustum multiplies the current matrix by a perspective projection.
// Post-multiplies, like Mult.
func (s *MatrixStack) Frustum(left, right, bottom, top, near, far float32) {
	cur := s.current()
	*cur = cur.Multiply(Frustum(left, right, bottom, top, near, far))
}

// Ortho multiplies the current matrix by an orthographic projection.
// Post-multiplies, like Mult.
func (s *MatrixStack) Ortho(left, right, bottom, top, near, far float32) {
	cur := s.current()
	*cur = cur.Multiply(Ortho(left, right, bottom, top, near, far))
}

// Current returns a copy of the matrix editing operations currently
// apply to.
func (s *MatrixStack) Current() Matrix { return *s.current() }

// ModelView returns the matrix a draw should use as its model-view: the
// transform matrix while a push bracket is open, else the base
// modelview.
func (s *MatrixStack) ModelView() Matrix {
	if s.transformPending {
		return s.transform
	}
	return s.modelview
}

// ProjectionFor returns the projection matrix for the given screen.
func (s *MatrixStack) ProjectionFor(secondary bool) Matrix {
	if secondary {
		return s.projectionSecondary
	}
	return s.projection
}

// TransformPending reports whether a Modelview push bracket is open.
func (s *MatrixStack) TransformPending() bool { return s.transformPending }
