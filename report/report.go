// Package report watches a published encoder count and tells a sink
// when it has moved.
package report

import (
	"context"
	"time"

	"encodercode-go/x/mathx"
)

// Report is one notification delivered to a Sink.
type Report struct {
	Name      string
	Count     int64
	Rotations float32
}

// Sink receives reports. Implementations may be shared by several
// reporters and must serialise their own output.
type Sink interface {
	Report(r Report)
}

type SinkFunc func(r Report)

func (f SinkFunc) Report(r Report) { f(r) }

// Source yields the latest published count. Next returns ok=false once
// ctx is done or the source is closed; otherwise it may block until a
// value is available.
type Source interface {
	Next(ctx context.Context) (int64, bool)
}

// Filter suppresses duplicate reports. A value passes when it differs
// from the last passed value by at least Threshold counts (minimum 1).
// The baseline is zero, the count of a freshly built encoder.
type Filter struct {
	Threshold uint32
	last      int64
}

func (f *Filter) Changed(v int64) bool {
	min := int64(mathx.Max(f.Threshold, 1))
	if mathx.Abs(v-f.last) < min {
		return false
	}
	f.last = v
	return true
}

// Last returns the most recently passed value.
func (f *Filter) Last() int64 { return f.last }

type Config struct {
	Name       string
	Resolution uint32        // counts per revolution, for Rotations
	Poll       time.Duration // wait between checks
	Threshold  uint32
}

// Reporter is the consumer side: it repeatedly takes the latest value
// from its Source, filters it and forwards changes to its Sink.
type Reporter struct {
	cfg    Config
	src    Source
	sink   Sink
	filter Filter
}

func New(cfg Config, src Source, sink Sink) *Reporter {
	if cfg.Poll <= 0 {
		cfg.Poll = 500 * time.Millisecond
	}
	return &Reporter{
		cfg:    cfg,
		src:    src,
		sink:   sink,
		filter: Filter{Threshold: cfg.Threshold},
	}
}

// Check runs one value through the filter and reports it if it passes.
func (r *Reporter) Check(v int64) bool {
	if !r.filter.Changed(v) {
		return false
	}
	rep := Report{Name: r.cfg.Name, Count: v}
	if r.cfg.Resolution != 0 {
		rep.Rotations = float32(v) / float32(r.cfg.Resolution)
	}
	r.sink.Report(rep)
	return true
}

// Run loops until ctx is done or the source closes.
func (r *Reporter) Run(ctx context.Context) {
	t := time.NewTimer(r.cfg.Poll)
	defer t.Stop()
	for {
		v, ok := r.src.Next(ctx)
		if !ok {
			return
		}
		r.Check(v)
		resetTimer(t, r.cfg.Poll)
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

// resetTimer safely stops, drains, and resets a timer.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
