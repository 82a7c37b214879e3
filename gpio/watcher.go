package gpio

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Event is one debounced edge.
type Event struct {
	Pin   int
	Level bool // after inversion
	Edge  Edge
	TS    time.Time
}

// Watcher moves pin interrupts out of ISR context. The ISR handler only
// reads the pin and does a non-blocking send; debounce and edge
// detection run on the worker goroutine.
type Watcher struct {
	// Written by ISR; MUST NOT block the ISR:
	isrQ chan isrEvent
	outQ chan Event

	mu     sync.Mutex
	inputs map[int]*watch

	drops atomic.Uint32 // ISR drop counter
}

type isrEvent struct {
	pin   int
	level bool
}

type watch struct {
	pin       IRQPin
	edge      Edge
	debounce  time.Duration
	invert    bool
	lastLevel bool
	lastEvent time.Time
}

func NewWatcher(isrBuf, outBuf int) *Watcher {
	if isrBuf <= 0 {
		isrBuf = 16
	}
	if outBuf <= 0 {
		outBuf = 16
	}
	return &Watcher{
		isrQ:   make(chan isrEvent, isrBuf),
		outQ:   make(chan Event, outBuf),
		inputs: map[int]*watch{},
	}
}

// Start runs the worker until ctx is done.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-w.isrQ:
				w.handleISR(ev)
			}
		}
	}()
}

func (w *Watcher) Events() <-chan Event { return w.outQ }

// Watch arms pin for edge. The returned func disarms it.
func (w *Watcher) Watch(pin IRQPin, edge Edge, debounce time.Duration, invert bool) (func(), error) {
	if edge == EdgeNone {
		return func() {}, nil
	}
	n := pin.Number()

	// Initial logical level, so the first edge compares like for like.
	init := pin.Get()
	if invert {
		init = !init
	}
	wh := &watch{pin: pin, edge: edge, debounce: debounce, invert: invert, lastLevel: init}

	w.mu.Lock()
	w.inputs[n] = wh
	w.mu.Unlock()

	handler := func() {
		select {
		case w.isrQ <- isrEvent{pin: n, level: pin.Get()}:
		default:
			w.drops.Add(1)
		}
	}
	if err := pin.SetIRQ(edge, handler); err != nil {
		w.mu.Lock()
		delete(w.inputs, n)
		w.mu.Unlock()
		return nil, err
	}

	return func() {
		_ = pin.ClearIRQ()
		w.mu.Lock()
		delete(w.inputs, n)
		w.mu.Unlock()
	}, nil
}

func (w *Watcher) handleISR(ev isrEvent) {
	w.mu.Lock()
	wh := w.inputs[ev.pin]
	w.mu.Unlock()
	if wh == nil {
		return
	}
	lvl := ev.level
	if wh.invert {
		lvl = !lvl
	}
	now := time.Now()

	// With a single armed edge the interrupt only fires for that edge, so
	// trust the configuration; with both, compare against the last level.
	e := wh.edge
	if e == EdgeBoth {
		switch {
		case !wh.lastLevel && lvl:
			e = EdgeRising
		case wh.lastLevel && !lvl:
			e = EdgeFalling
		default:
			e = EdgeNone
		}
	}
	// Track the level even inside the debounce window, or the edge after a
	// suppressed one compares against a stale level.
	wh.lastLevel = lvl
	if e == EdgeNone {
		return
	}
	if !wh.lastEvent.IsZero() && now.Sub(wh.lastEvent) < wh.debounce {
		return
	}
	wh.lastEvent = now

	select {
	case w.outQ <- Event{Pin: ev.pin, Level: lvl, Edge: e, TS: now}:
	default:
		// drop to protect system if consumer is slow
	}
}

// WaitFor blocks until an edge of kind e arrives on pin. Other events
// are discarded.
func (w *Watcher) WaitFor(ctx context.Context, pin int, e Edge) (Event, error) {
	for {
		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case ev := <-w.outQ:
			if ev.Pin == pin && (e == EdgeBoth || ev.Edge == e) {
				return ev, nil
			}
		}
	}
}

func (w *Watcher) ISRDrops() uint32 { return w.drops.Load() }
