package gpio

import "sync"

// FakePin is an in-memory IRQPin. Set fires the registered handler
// synchronously when the change matches the armed edge.
type FakePin struct {
	mu      sync.Mutex
	number  int
	level   bool
	irqEdge Edge
	irqFunc func()
}

func NewFakePin(number int, level bool) *FakePin {
	return &FakePin{number: number, level: level}
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	old := p.level
	p.level = level
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edgeFrom(old, level))
	p.mu.Unlock()
	if want && irq != nil {
		irq()
	}
}

func (p *FakePin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakePin) Number() int { return p.number }

func (p *FakePin) SetIRQ(edge Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

func edgeFrom(old, new bool) Edge {
	switch {
	case !old && new:
		return EdgeRising
	case old && !new:
		return EdgeFalling
	default:
		return EdgeNone
	}
}

func irqWanted(cfg, seen Edge) bool {
	if seen == EdgeNone {
		return false
	}
	return cfg == EdgeBoth || cfg == seen
}
