// Package hwcount provides encoder.CounterSource implementations.
package hwcount

import (
	"context"
	"sync/atomic"
	"time"
)

// Sim is a software stand-in for a timer in quadrature decode mode: a
// 16-bit counter that wraps modulo 65536. Safe for use from any goroutine.
type Sim struct {
	v atomic.Uint32
}

func NewSim(initial uint16) *Sim {
	s := &Sim{}
	s.v.Store(uint32(initial))
	return s
}

func (s *Sim) Count() uint16 { return uint16(s.v.Load()) }

func (s *Sim) Set(v uint16) { s.v.Store(uint32(v)) }

// Step moves the counter by n edges; negative n counts down.
func (s *Sim) Step(n int) {
	for {
		old := s.v.Load()
		next := uint32(uint16(int64(old) + int64(n)))
		if s.v.CompareAndSwap(old, next) {
			return
		}
	}
}

// Spin advances the counter at countsPerSec (negative for reverse),
// updating every tick, until ctx is done. Fractional counts carry over
// between ticks.
func (s *Sim) Spin(ctx context.Context, countsPerSec float64, tick time.Duration) {
	if tick <= 0 {
		tick = time.Millisecond
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	last := time.Now()
	var carry float64
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			carry += countsPerSec * now.Sub(last).Seconds()
			last = now
			whole := int(carry)
			carry -= float64(whole)
			if whole != 0 {
				s.Step(whole)
			}
		}
	}
}

// CountsPerSec converts shaft speed to 4x-decoded counts per second.
func CountsPerSec(rpm float64, ppr uint32) float64 {
	return rpm / 60 * float64(ppr) * 4
}
