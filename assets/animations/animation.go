package animations

// Animation plays an ordered list of frame identifiers at a fixed rate.
// Elapsed time is accumulated and the sub-frame remainder is carried over,
// so variable frame times never make the animation drift.
type Animation struct {
	Frames []string
	FPS    float64 // frames per second

	accumulated float64
	frame       int
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if len(a.Frames) == 0 || a.FPS <= 0 {
		return
	}

	a.accumulated += dt
	frameDuration := 1.0 / a.FPS
	for a.accumulated >= frameDuration {
		a.accumulated -= frameDuration
		a.frame = (a.frame + 1) % len(a.Frames)
	}
}

// Frame returns the identifier of the current frame.
func (a *Animation) Frame() string {
	if len(a.Frames) == 0 {
		return ""
	}
	return a.Frames[a.frame]
}

// Index returns the position of the current frame in Frames.
func (a *Animation) Index() int {
	return a.frame
}

// Restart goes back to the first frame and clears the accumulated time.
func (a *Animation) Restart() {
	a.frame = 0
	a.accumulated = 0
}

func NewAnimation(frames []string, fps float64) *Animation {
	return &Animation{
		Frames: frames,
		FPS:    fps,
	}
}
