// encoder/encoder.go
package encoder

// HalfRange is the largest raw movement that can be told apart from a
// wrap in the opposite direction. Consecutive Update calls must see less
// than this much rotation.
const HalfRange = 32767

// CountsPerPulse is the quadrature multiplier: both edges of both phases.
const CountsPerPulse = 4

// CounterSource is a free-running 16-bit hardware counter in quadrature
// decode mode. Reads are treated as infallible.
type CounterSource interface {
	Count() uint16
}

// Encoder extends a 16-bit hardware counter into a signed 64-bit position.
//
// An Encoder is owned by exactly one goroutine. Other goroutines observe
// its value through a publisher, never by calling methods on it.
type Encoder struct {
	src        CounterSource
	resolution uint32
	dir        Direction
	last       uint16
	count      int64
}

// New seeds the encoder with one hardware read so that the first Update
// does not see a jump from zero.
func New(src CounterSource, ppr uint32, dir Direction) *Encoder {
	return &Encoder{
		src:        src,
		resolution: ppr * CountsPerPulse,
		dir:        dir,
		last:       src.Count(),
	}
}

// Update reads the hardware counter and folds the movement since the
// previous read into the software count.
func (e *Encoder) Update() {
	cur := e.src.Count()
	e.count += int64(e.dir) * Delta(cur, e.last)
	e.last = cur
}

func (e *Encoder) Count() int64 { return e.count }

// Rotations returns Count divided by the resolution.
func (e *Encoder) Rotations() float32 {
	return float32(e.count) / float32(e.resolution)
}

func (e *Encoder) Resolution() uint32   { return e.resolution }
func (e *Encoder) Direction() Direction { return e.dir }

// Delta returns the signed movement from last to current on the 16-bit
// ring, taking the shorter way round.
func Delta(current, last uint16) int64 {
	if current > last {
		diff := int64(current - last)
		if diff <= HalfRange {
			return diff
		}
		// 65486 after 50: wrapped backwards through zero.
		return -(65536 - diff)
	}
	diff := int64(last - current)
	if diff <= HalfRange {
		return -diff
	}
	// 50 after 65486: wrapped forwards through zero.
	return 65536 - diff
}
