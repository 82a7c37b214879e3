package sampler

import (
	"context"
	"testing"
	"time"

	"encodercode-go/encoder"
	"encodercode-go/hwcount"
	"encodercode-go/publish"
)

func TestStepPublishesCount(t *testing.T) {
	sim := hwcount.NewSim(0)
	cell := publish.NewCell()
	l := New(encoder.New(sim, 2048, encoder.Reverse), cell, time.Millisecond)

	for _, raw := range []uint16{100, 250} {
		sim.Set(raw)
		l.Step()
	}
	if got := cell.Load(); got != -250 {
		t.Fatalf("published %d, want -250", got)
	}
	if l.Samples() != 2 {
		t.Fatalf("samples = %d", l.Samples())
	}
}

func TestDefaultInterval(t *testing.T) {
	l := New(encoder.New(hwcount.NewSim(0), 1, encoder.Forward), publish.NewCell(), 0)
	if l.Interval() != 5*time.Millisecond {
		t.Fatalf("interval = %v", l.Interval())
	}
}

func TestRunTracksWrappingCounter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sim := hwcount.NewSim(65000)
	slot := publish.NewSlot()
	l := New(encoder.New(sim, 2048, encoder.Forward), slot, time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(ctx)
	}()

	// Move forward through the wrap point in small steps.
	for i := 0; i < 20; i++ {
		sim.Step(100)
		time.Sleep(2 * time.Millisecond)
	}

	rctx, rcancel := context.WithTimeout(context.Background(), time.Second)
	defer rcancel()
	var got int64
	for got != 2000 {
		v, ok := slot.Receive(rctx)
		if !ok {
			t.Fatalf("never saw 2000, last %d", got)
		}
		got = v
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}
