package pica

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixStack(t *testing.T) {
	s := NewMatrixStack()
	assert.Equal(t, Modelview, s.Mode())
	assert.Equal(t, 0, s.Depth())
	assert.True(t, s.Current().IsIdentity())
	assert.True(t, s.ModelView().IsIdentity())
	assert.True(t, s.ProjectionFor(false).IsIdentity())
	assert.True(t, s.ProjectionFor(true).IsIdentity())
	assert.False(t, s.TransformPending())
}

func TestSetModeSelectsMatrix(t *testing.T) {
	s := NewMatrixStack()

	s.SetMode(Projection)
	s.Translate(1, 0, 0)
	s.SetMode(ProjectionSecondary)
	s.Translate(2, 0, 0)
	s.SetMode(Modelview)
	s.Translate(3, 0, 0)

	assert.Equal(t, float32(1), s.ProjectionFor(false).M12)
	assert.Equal(t, float32(2), s.ProjectionFor(true).M12)
	assert.Equal(t, float32(3), s.ModelView().M12)
}

// Translate, Rotate and Scale apply to the vertex after everything
// already in the current matrix: calls later in program order act first.
func TestComposeOrder(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(10, 0, 0)
	s.Scale(2, 2, 2)

	x, _, _ := transformPoint(s.Current(), 1, 0, 0)
	assert.InDelta(t, 12, x, matrixEpsilon)
}

func TestRotateDegrees(t *testing.T) {
	s := NewMatrixStack()
	s.Rotate(90, 0, 0, 1)

	x, y, _ := transformPoint(s.Current(), 1, 0, 0)
	assert.InDelta(t, 0, x, matrixEpsilon)
	assert.InDelta(t, 1, y, matrixEpsilon)
}

// Mult, Frustum and Ortho compose on the other side: the new transform
// applies after the existing one.
func TestMultPostMultiplies(t *testing.T) {
	s := NewMatrixStack()
	s.Scale(2, 2, 2)
	s.Mult([16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		10, 0, 0, 1, // translation in the fourth column
	})

	// Scale first, then translate: 1*2 + 10. Had Translate been used
	// instead of Mult, the translation would have applied first.
	x, _, _ := transformPoint(s.Current(), 1, 0, 0)
	assert.InDelta(t, 12, x, matrixEpsilon)
}

func TestOrthoOnIdentity(t *testing.T) {
	s := NewMatrixStack()
	s.SetMode(Projection)
	s.Ortho(0, 400, 0, 240, 0, 1)
	matrixNear(t, Ortho(0, 400, 0, 240, 0, 1), s.Current())
}

func TestLoadIdentity(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(5, 5, 5)
	s.LoadIdentity()
	assert.True(t, s.Current().IsIdentity())
}

func TestPushPopProjection(t *testing.T) {
	s := NewMatrixStack()
	s.SetMode(Projection)
	s.Ortho(0, 400, 0, 240, 0, 1)
	saved := s.Current()

	require.NoError(t, s.Push())
	assert.Equal(t, 1, s.Depth())
	s.LoadIdentity()
	s.Translate(7, 7, 7)

	s.Pop()
	assert.Equal(t, 0, s.Depth())
	matrixNear(t, saved, s.Current())
}

// Pushing in Modelview mode redirects edits into the transform matrix;
// the base modelview stays untouched until the bracket closes.
func TestPushRedirectsModelview(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(5, 0, 0)
	base := s.Current()

	require.NoError(t, s.Push())
	assert.True(t, s.TransformPending())

	s.Translate(100, 0, 0)
	// Draws inside the bracket see the transform matrix.
	assert.Equal(t, float32(100), s.ModelView().M12)

	s.Pop()
	assert.False(t, s.TransformPending())
	matrixNear(t, base, s.Current())
	matrixNear(t, base, s.ModelView())
}

func TestNestedPushPop(t *testing.T) {
	s := NewMatrixStack()
	s.SetMode(Projection)

	var saved []Matrix
	for i := 0; i < 5; i++ {
		saved = append(saved, s.Current())
		require.NoError(t, s.Push())
		s.Translate(float32(i+1), 0, 0)
	}
	for i := 4; i >= 0; i-- {
		s.Pop()
		matrixNear(t, saved[i], s.Current())
	}
	assert.Equal(t, 0, s.Depth())
}

func TestPushOverflowRejected(t *testing.T) {
	s := NewMatrixStack()
	s.SetMode(Projection)
	s.Translate(1, 2, 3)

	for i := 0; i < StackCapacity; i++ {
		require.NoError(t, s.Push())
	}
	assert.Equal(t, StackCapacity, s.Depth())

	before := s.Current()
	err := s.Push()
	assert.ErrorIs(t, err, ErrStackOverflow)
	assert.Equal(t, StackCapacity, s.Depth())
	matrixNear(t, before, s.Current())
}

func TestPopEmptyIsNoOp(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(9, 0, 0)
	before := s.Current()

	s.Pop()
	assert.Equal(t, 0, s.Depth())
	matrixNear(t, before, s.Current())
}

// The redirect stays in place across nested pushes and clears only when
// the stack empties.
func TestNestedModelviewRedirect(t *testing.T) {
	s := NewMatrixStack()

	require.NoError(t, s.Push())
	s.Translate(1, 0, 0)
	require.NoError(t, s.Push())
	s.Translate(1, 0, 0)
	assert.Equal(t, float32(2), s.ModelView().M12)

	s.Pop()
	assert.True(t, s.TransformPending())
	assert.Equal(t, float32(1), s.ModelView().M12)

	s.Pop()
	assert.False(t, s.TransformPending())
	assert.True(t, s.ModelView().IsIdentity())
}
