package hwcount

import (
	"context"
	"testing"
	"time"

	"encodercode-go/encoder"
)

func TestSimWraps(t *testing.T) {
	s := NewSim(65530)
	s.Step(10)
	if s.Count() != 4 {
		t.Fatalf("forward wrap: %d, want 4", s.Count())
	}
	s.Step(-5)
	if s.Count() != 65535 {
		t.Fatalf("reverse wrap: %d, want 65535", s.Count())
	}
	s.Set(100)
	if s.Count() != 100 {
		t.Fatalf("Set: %d", s.Count())
	}
}

func TestSimDrivesEncoderThroughManyWraps(t *testing.T) {
	s := NewSim(0)
	e := encoder.New(s, 2048, encoder.Forward)
	for i := 0; i < 100; i++ {
		s.Step(30000)
		e.Update()
	}
	if got, want := e.Count(), int64(100*30000); got != want {
		t.Fatalf("count = %d, want %d", got, want)
	}
	if got := e.Rotations(); got < 366 || got > 367 {
		t.Fatalf("rotations = %v", got)
	}
}

func TestSpinMovesInDirection(t *testing.T) {
	for _, c := range []struct {
		rate float64
		sign int64
	}{
		{20000, 1},
		{-20000, -1},
	} {
		s := NewSim(0)
		e := encoder.New(s, 1, encoder.Forward)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			s.Spin(ctx, c.rate, time.Millisecond)
		}()
		deadline := time.Now().Add(time.Second)
		for e.Count()*c.sign < 100 && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
			e.Update()
		}
		cancel()
		<-done
		if e.Count()*c.sign < 100 {
			t.Fatalf("rate %v: count = %d", c.rate, e.Count())
		}
	}
}

func TestCountsPerSec(t *testing.T) {
	if got := CountsPerSec(600, 2048); got != 81920 {
		t.Fatalf("CountsPerSec = %v", got)
	}
}
