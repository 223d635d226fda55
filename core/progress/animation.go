package progress

import "slices"

// Animation is a cyclic sequence of frames.
type Animation struct {
	frames []string
	cursor int
}

// NewAnimation returns an animation over frames, or nil when frames is empty.
func NewAnimation(frames ...string) *Animation {
	if len(frames) == 0 {
		return nil
	}
	return &Animation{frames: slices.Clone(frames)}
}

// Next returns the frame at the cursor and advances it, wrapping at the end.
func (a *Animation) Next() string {
	frame := a.frames[a.cursor]
	a.cursor = (a.cursor + 1) % len(a.frames)
	return frame
}
