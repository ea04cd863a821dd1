package obj

// Animator is a tick counter that cycles a frame index. Frames advance every
// TicksPerFrame calls to Tick; the caller decides which frame list the index
// applies to so several lists (idle, run) can share one cycle.
type Animator struct {
	TicksPerFrame int

	tick  int
	index int
}

func NewAnimator(ticksPerFrame int) *Animator {
	if ticksPerFrame <= 0 {
		ticksPerFrame = 1
	}
	return &Animator{TicksPerFrame: ticksPerFrame}
}

// Tick advances the counter and reports whether this tick is a frame boundary.
func (a *Animator) Tick() bool {
	if a == nil {
		return false
	}
	a.tick++
	return a.tick%a.TicksPerFrame == 0
}

// Next moves to the following frame of an n-frame cycle and returns its index.
func (a *Animator) Next(n int) int {
	if a == nil || n <= 0 {
		return 0
	}
	a.index = (a.index + 1) % n
	return a.index
}

func (a *Animator) Index() int {
	if a == nil {
		return 0
	}
	return a.index
}

func (a *Animator) Ticks() int {
	if a == nil {
		return 0
	}
	return a.tick
}

// Reset sets the animator back to the first frame.
func (a *Animator) Reset() {
	if a == nil {
		return
	}
	a.tick = 0
	a.index = 0
}
