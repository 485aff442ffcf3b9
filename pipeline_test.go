package pica

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pica/driver"
	"github.com/gogpu/pica/driver/recording"
)

// newTestRenderer creates a renderer on a recording device and resets
// the command stream so tests see only the calls under inspection.
func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, *recording.Device) {
	t.Helper()
	dev := recording.New()
	r, err := New(dev, opts...)
	require.NoError(t, err)
	t.Cleanup(r.Close)
	dev.Reset()
	return r, dev
}

// vertices groups the recorded attribute stream into per-vertex sets of
// the given width.
func vertices(t *testing.T, dev *recording.Device, width int) [][][4]float32 {
	t.Helper()
	attrs := dev.SentAttributes()
	require.Zero(t, len(attrs)%width, "attribute count %d not a multiple of %d", len(attrs), width)
	out := make([][][4]float32, 0, len(attrs)/width)
	for i := 0; i < len(attrs); i += width {
		out = append(out, attrs[i:i+width])
	}
	return out
}

func TestBeginSelectsTopology(t *testing.T) {
	tests := []struct {
		mode PrimitiveMode
		want driver.Topology
	}{
		{Triangles, driver.TopologyTriangles},
		{Lines, driver.TopologyTriangleStrip},
		{Quads, driver.TopologyTriangleStrip},
	}
	for _, tt := range tests {
		r, dev := newTestRenderer(t)
		r.Begin(tt.mode)
		r.End()

		begins := dev.Filter(recording.OpDrawBegin)
		require.Len(t, begins, 1)
		assert.Equal(t, tt.want, begins[0].Topology)
		assert.Len(t, dev.Filter(recording.OpDrawEnd), 1)
	}
}

func TestBeginUploadsMatrices(t *testing.T) {
	r, dev := newTestRenderer(t)
	r.Matrices().SetMode(Projection)
	r.Matrices().Ortho(0, 400, 0, 240, 0, 1)
	r.Matrices().SetMode(Modelview)
	r.Matrices().Translate(3, 4, 5)

	r.Begin(Triangles)
	r.End()

	projs := dev.Filter(recording.OpSetProjection)
	require.Len(t, projs, 1)
	assert.Equal(t, Ortho(0, 400, 0, 240, 0, 1).deviceOrder(), projs[0].Matrix)

	mvs := dev.Filter(recording.OpSetModelView)
	require.Len(t, mvs, 1)
	assert.Equal(t, Translate(3, 4, 5).deviceOrder(), mvs[0].Matrix)
}

// With the bottom screen selected, Begin uploads the secondary
// projection matrix.
func TestBeginUsesSecondaryProjection(t *testing.T) {
	r, dev := newTestRenderer(t)
	r.Matrices().SetMode(Projection)
	r.Matrices().Ortho(0, 400, 0, 240, 0, 1)
	r.Matrices().SetMode(ProjectionSecondary)
	r.Matrices().Ortho(0, 320, 0, 240, 0, 1)

	r.SetScreen(driver.ScreenBottom)
	r.Begin(Triangles)
	r.End()

	projs := dev.Filter(recording.OpSetProjection)
	require.Len(t, projs, 1)
	assert.Equal(t, Ortho(0, 320, 0, 240, 0, 1).deviceOrder(), projs[0].Matrix)

	screens := dev.Filter(recording.OpSelectScreen)
	require.Len(t, screens, 1)
	assert.Equal(t, driver.ScreenBottom, screens[0].Screen)
	assert.Equal(t, driver.ScreenBottom, r.CurrentScreen())
}

// While a Modelview push bracket is open, Begin uploads the transform
// matrix instead of the base modelview.
func TestBeginUploadsTransformInsideBracket(t *testing.T) {
	r, dev := newTestRenderer(t)
	r.Matrices().Translate(1, 0, 0)
	r.PushMatrix()
	r.Matrices().Translate(100, 0, 0)

	r.Begin(Triangles)
	r.End()
	r.PopMatrix()

	mvs := dev.Filter(recording.OpSetModelView)
	require.Len(t, mvs, 1)
	assert.Equal(t, Translate(100, 0, 0).deviceOrder(), mvs[0].Matrix)
}

func TestTriangleSubmission(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Triangles)
	r.Color4f(1, 0, 0, 1)
	r.Vertex3f(0, 0, 0)
	r.Color4f(0, 1, 0, 1)
	r.Vertex3f(1, 0, 0)
	r.Color4f(0, 0, 1, 1)
	r.Vertex3f(0, 1, 0)
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 3)

	// Each vertex goes out as position, texcoord, color in that order,
	// regardless of submission order.
	assert.Equal(t, [4]float32{0, 0, 0, 0}, vs[0][0])
	assert.Equal(t, [4]float32{0, 0, 0, 0}, vs[0][1])
	assert.Equal(t, [4]float32{1, 0, 0, 1}, vs[0][2])

	assert.Equal(t, [4]float32{1, 0, 0, 0}, vs[1][0])
	assert.Equal(t, [4]float32{0, 1, 0, 1}, vs[1][2])

	assert.Equal(t, [4]float32{0, 1, 0, 0}, vs[2][0])
	assert.Equal(t, [4]float32{0, 0, 1, 1}, vs[2][2])
}

// Submitting the same slot twice in a row is the vertex boundary: the
// first set flushes with whatever defaults were never overridden.
func TestRepeatSlotFlushes(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Triangles)
	r.Vertex2f(1, 2)
	r.Vertex2f(3, 4) // boundary: flushes the first vertex
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 2)

	assert.Equal(t, [4]float32{1, 2, 0, 0}, vs[0][0])
	assert.Equal(t, [4]float32{0, 0, 0, 0}, vs[0][1], "texcoord default")
	assert.Equal(t, [4]float32{1, 1, 1, 1}, vs[0][2], "color default")

	assert.Equal(t, [4]float32{3, 4, 0, 0}, vs[1][0])
}

// An attribute that carries over is re-sent with each vertex until
// overridden: one Color call colors every following vertex.
func TestAttributeCarriesForward(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Triangles)
	r.Color4f(0.5, 0.5, 0.5, 1)
	r.Vertex3f(0, 0, 0)
	r.Vertex3f(1, 0, 0)
	r.Vertex3f(0, 1, 0)
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 3)
	for i, v := range vs {
		assert.Equal(t, [4]float32{0.5, 0.5, 0.5, 1}, v[2], "vertex %d color", i)
	}
}

// Four submitted corners become four strip vertices: the third corner is
// snapshotted and re-sent before the fourth, so both triangles of the
// quad share the diagonal in strip order.
func TestQuadEmission(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Quads)
	r.Color4f(1, 0, 0, 1)
	r.Vertex3f(0, 0, 0)
	r.Color4f(0, 1, 0, 1)
	r.Vertex3f(1, 0, 0)
	r.Color4f(0, 0, 1, 1)
	r.Vertex3f(1, 1, 0)
	r.Color4f(1, 1, 0, 1)
	r.Vertex3f(0, 1, 0)
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 4)

	assert.Equal(t, [4]float32{0, 0, 0, 0}, vs[0][0])
	assert.Equal(t, [4]float32{1, 0, 0, 0}, vs[1][0])
	assert.Equal(t, [4]float32{1, 1, 0, 0}, vs[2][0])
	assert.Equal(t, [4]float32{0, 1, 0, 0}, vs[3][0])

	// The snapshot carries the third corner's color, not a stale or
	// later value.
	assert.Equal(t, [4]float32{0, 0, 1, 1}, vs[2][2])
	assert.Equal(t, [4]float32{1, 1, 0, 1}, vs[3][2])
}

func TestTwoQuads(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Quads)
	for q := 0; q < 2; q++ {
		base := float32(q * 10)
		r.Vertex2i(int(base), 0)
		r.Vertex2i(int(base)+1, 0)
		r.Vertex2i(int(base)+1, 1)
		r.Vertex2i(int(base), 1)
	}
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 8)
	assert.Equal(t, [4]float32{0, 0, 0, 0}, vs[0][0])
	assert.Equal(t, [4]float32{0, 1, 0, 0}, vs[3][0])
	assert.Equal(t, [4]float32{10, 0, 0, 0}, vs[4][0])
	assert.Equal(t, [4]float32{10, 1, 0, 0}, vs[7][0])
}

func TestLineSubmission(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Lines)
	r.Vertex2i(0, 0)
	r.Vertex2i(5, 5)
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 2)
	assert.Equal(t, [4]float32{0, 0, 0, 0}, vs[0][0])
	assert.Equal(t, [4]float32{5, 5, 0, 0}, vs[1][0])
}

// Vertex2f stamps the sequencer's current depth into z; Vertex2i leaves
// z at zero.
func TestDepthStamping(t *testing.T) {
	r, dev := newTestRenderer(t)
	r.SetDepth(0.25)

	r.Begin(Triangles)
	r.Vertex2f(1, 1)
	r.Vertex2i(2, 2)
	r.Vertex2f(3, 3)
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 3)
	assert.Equal(t, [4]float32{1, 1, 0.25, 0}, vs[0][0])
	assert.Equal(t, [4]float32{2, 2, 0, 0}, vs[1][0])
	assert.Equal(t, [4]float32{3, 3, 0.25, 0}, vs[2][0])
}

func TestEndAdvancesDepth(t *testing.T) {
	r, _ := newTestRenderer(t)
	require.Equal(t, float32(0), r.CurrentDepth())

	for i := 1; i <= 3; i++ {
		r.Begin(Triangles)
		r.Vertex2f(0, 0)
		r.Vertex2f(1, 0)
		r.Vertex2f(0, 1)
		r.End()
		assert.InDelta(t, -float32(i)*DepthStep, r.CurrentDepth(), 1e-7)
	}
}

func TestColor4ubNormalizes(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Triangles)
	r.Color4ub(255, 0, 51, 255)
	r.Vertex3f(0, 0, 0)
	r.Vertex3f(1, 0, 0)
	r.Vertex3f(0, 1, 0)
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 3)
	c := vs[0][2]
	assert.Equal(t, float32(1), c[0])
	assert.Equal(t, float32(0), c[1])
	assert.InDelta(t, 0.2, c[2], 1e-6)
	assert.Equal(t, float32(1), c[3])
}

// Color3f leaves alpha at zero; the device contract treats the color
// register as a plain float4.
func TestColor3f(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Triangles)
	r.Color3f(0.1, 0.2, 0.3)
	r.Vertex3f(0, 0, 0)
	r.Vertex3f(1, 0, 0)
	r.Vertex3f(0, 1, 0)
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 3)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 0}, vs[0][2])
}

// With three active slots the normal is tracked but never sent, and a
// repeated normal does not flush a vertex.
func TestNormalInactiveByDefault(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Triangles)
	r.Normal3f(0, 0, 1)
	r.Normal3f(0, 1, 0) // repeat on an inactive slot: no boundary
	r.Vertex3f(0, 0, 0)
	r.Vertex3f(1, 0, 0)
	r.Vertex3f(0, 1, 0)
	r.End()

	vs := vertices(t, dev, 3)
	assert.Len(t, vs, 3)
}

func TestNormalActiveWithFourAttributes(t *testing.T) {
	r, dev := newTestRenderer(t, WithActiveAttributes(4), WithoutDefaultTexture())

	r.Begin(Triangles)
	r.Normal3f(0, 1, 0)
	r.Vertex3f(0, 0, 0)
	r.Vertex3f(1, 0, 0)
	r.Vertex3f(0, 1, 0)
	r.End()

	vs := vertices(t, dev, 4)
	require.Len(t, vs, 3)
	assert.Equal(t, [4]float32{0, 1, 0, 0}, vs[0][3])
	// The default normal is +z; the override replaced it for all three.
	assert.Equal(t, [4]float32{0, 1, 0, 0}, vs[2][3])
}

func TestTexCoordSubmission(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Triangles)
	r.TexCoord2f(0, 1)
	r.Vertex3f(0, 0, 0)
	r.TexCoord2f(1, 1)
	r.Vertex3f(1, 0, 0)
	r.TexCoord2f(1, 0)
	r.Vertex3f(0, 1, 0)
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 3)
	assert.Equal(t, [4]float32{0, 1, 0, 0}, vs[0][1])
	assert.Equal(t, [4]float32{1, 1, 0, 0}, vs[1][1])
	assert.Equal(t, [4]float32{1, 0, 0, 0}, vs[2][1])
}

// Slot defaults reset at every Begin; state never leaks across brackets.
func TestBeginResetsDefaults(t *testing.T) {
	r, dev := newTestRenderer(t)

	r.Begin(Triangles)
	r.Color4f(0, 0, 0, 0)
	r.TexCoord2f(9, 9)
	r.Vertex3f(0, 0, 0)
	r.Vertex3f(1, 0, 0)
	r.Vertex3f(0, 1, 0)
	r.End()

	dev.Reset()
	r.Begin(Triangles)
	r.Vertex3f(0, 0, 0)
	r.Vertex3f(1, 0, 0)
	r.Vertex3f(0, 1, 0)
	r.End()

	vs := vertices(t, dev, 3)
	require.Len(t, vs, 3)
	assert.Equal(t, [4]float32{0, 0, 0, 0}, vs[0][1], "texcoord back to default")
	assert.Equal(t, [4]float32{1, 1, 1, 1}, vs[0][2], "color back to default")
}
