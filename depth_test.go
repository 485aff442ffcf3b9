package pica

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepthSequencer(t *testing.T) {
	var d DepthSequencer
	assert.Equal(t, float32(0), d.Value())

	d.Advance()
	assert.Equal(t, -DepthStep, d.Value())

	for i := 0; i < 9; i++ {
		d.Advance()
	}
	assert.InDelta(t, -10*DepthStep, d.Value(), 1e-7)

	d.Set(0.5)
	assert.Equal(t, float32(0.5), d.Value())
	d.Advance()
	assert.Equal(t, 0.5-DepthStep, d.Value())
}

// The sequencer never floors or wraps; long runs simply keep walking.
func TestDepthSequencerMonotonic(t *testing.T) {
	var d DepthSequencer
	prev := d.Value()
	for i := 0; i < 1000; i++ {
		d.Advance()
		if d.Value() >= prev {
			t.Fatalf("depth did not decrease at step %d: %v >= %v", i, d.Value(), prev)
		}
		prev = d.Value()
	}
}
