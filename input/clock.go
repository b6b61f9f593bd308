package input

// FrameClock measures the time between frames and the frame rate.
// Times are in seconds, as returned by glfw.GetTime.
type FrameClock struct {
	lastFrame float64

	frames      int
	windowStart float64
	fps         float64
}

// Tick records a frame at now and returns the seconds since the previous
// frame. The first frame is measured from zero.
func (c *FrameClock) Tick(now float64) float32 {
	delta := now - c.lastFrame
	if delta < 0 {
		delta = 0
	}
	c.lastFrame = now

	c.frames++
	if elapsed := now - c.windowStart; elapsed >= 1 {
		c.fps = float64(c.frames) / elapsed
		c.frames = 0
		c.windowStart = now
	}

	return float32(delta)
}

// FPS returns the frame rate over the last full second, or zero before the
// first second has passed.
func (c *FrameClock) FPS() float64 {
	return c.fps
}
