// Package sampler runs the periodic task that owns an Encoder.
package sampler

import (
	"context"
	"time"

	"encodercode-go/encoder"
	"encodercode-go/publish"
)

// Loop is the only caller of Update on its Encoder.
//
// The interval must be short enough that the shaft turns less than
// encoder.HalfRange counts between samples; config.Encoder.Validate
// checks this against the configured maximum speed.
type Loop struct {
	enc      *encoder.Encoder
	pub      publish.Publisher
	interval time.Duration
	samples  uint64
}

func New(enc *encoder.Encoder, pub publish.Publisher, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = 5 * time.Millisecond
	}
	return &Loop{enc: enc, pub: pub, interval: interval}
}

// Step samples the hardware once and publishes the new count.
func (l *Loop) Step() int64 {
	l.enc.Update()
	c := l.enc.Count()
	l.pub.Publish(c)
	l.samples++
	return c
}

// Run samples forever. ctx only exists so hosts and tests can stop it;
// firmware passes context.Background().
func (l *Loop) Run(ctx context.Context) {
	tick := time.NewTicker(l.interval)
	defer tick.Stop()
	for {
		l.Step()
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}

// Start runs the loop on its own goroutine.
func (l *Loop) Start(ctx context.Context) { go l.Run(ctx) }

// Samples is the number of completed steps. Only meaningful from the
// loop's own goroutine or after Run has returned.
func (l *Loop) Samples() uint64 { return l.samples }

func (l *Loop) Interval() time.Duration { return l.interval }
