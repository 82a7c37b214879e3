package ramp

import (
	"time"

	"encodercode-go/x/mathx"
)

// Step sets the new level in [0..top].
type Step func(level uint32)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Levels returns the duty levels of one sweep: 0, top/steps, 2*top/steps
// and so on, never exceeding top. steps==0 yields just {0, top}.
func Levels(top, steps uint32) []uint32 {
	stride := top
	if steps > 0 {
		stride = mathx.Max(top/steps, 1)
	}
	if stride == 0 {
		return []uint32{0}
	}
	out := make([]uint32, 0, top/stride+1)
	for l := uint32(0); ; l += stride {
		out = append(out, l)
		if top-l < stride {
			break
		}
	}
	return out
}

// Sweep repeatedly walks set through Levels(top, steps), waiting dwell
// after each level, until tick reports cancellation.
func Sweep(top, steps uint32, dwell time.Duration, tick Tick, set Step) {
	levels := Levels(top, steps)
	for {
		for _, l := range levels {
			set(l)
			if !tick(dwell) {
				return
			}
		}
	}
}
