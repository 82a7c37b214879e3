package publish

import "context"

// Slot is a single-capacity overwrite channel for one reader.
// Publish discards any value the reader has not taken yet and deposits
// the new one.
type Slot struct {
	ch chan int64
}

func NewSlot() *Slot { return &Slot{ch: make(chan int64, 1)} }

// Publish never blocks. It must only be called from a single goroutine;
// with one sender the slot is always empty after the drain.
func (s *Slot) Publish(count int64) {
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- count:
	default:
	}
}

// Receive waits for the next value.
func (s *Slot) Receive(ctx context.Context) (int64, bool) {
	select {
	case <-ctx.Done():
		return 0, false
	case v := <-s.ch:
		return v, true
	}
}

// TryReceive takes a pending value without waiting.
func (s *Slot) TryReceive() (int64, bool) {
	select {
	case v := <-s.ch:
		return v, true
	default:
		return 0, false
	}
}

func (s *Slot) Next(ctx context.Context) (int64, bool) { return s.Receive(ctx) }
