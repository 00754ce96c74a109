package app

// scrollAccumulator sums wheel events between two updates.
type scrollAccumulator struct {
	dy float32
}

func (s *scrollAccumulator) add(dy float64) { s.dy += float32(dy) }

// drain returns the delta of the frame and starts a new one.
func (s *scrollAccumulator) drain() float32 {
	dy := s.dy
	s.dy = 0
	return dy
}

// frameClock measures the time between two ticks, in seconds.
type frameClock struct {
	last    float64
	started bool
}

func (c *frameClock) tick(now float64) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now - c.last
	c.last = now
	return dt
}
