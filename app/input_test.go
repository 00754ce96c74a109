package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollAccumulator(t *testing.T) {
	s := &scrollAccumulator{}
	assert.Zero(t, s.drain())

	s.add(1)
	s.add(0.5)
	s.add(-2)
	assert.InDelta(t, -0.5, s.drain(), 1e-6)
	assert.Zero(t, s.drain(), "drain starts a new frame")
}

func TestFrameClock(t *testing.T) {
	c := &frameClock{}
	assert.Zero(t, c.tick(10))
	assert.InDelta(t, 0.5, c.tick(10.5), 1e-9)
	assert.InDelta(t, 0.25, c.tick(10.75), 1e-9)
}
