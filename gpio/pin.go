// Package gpio provides the pin abstraction and interrupt edge watcher
// used by the button demo.
package gpio

// Edge selection for IRQ.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// Pin is a configured GPIO line.
type Pin interface {
	Get() bool
	Set(level bool)
	Number() int
}

// IRQPin extends Pin with interrupts. The handler runs in interrupt
// context on hardware and must not block.
type IRQPin interface {
	Pin
	SetIRQ(edge Edge, handler func()) error
	ClearIRQ() error
}
