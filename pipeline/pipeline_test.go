package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"encodercode-go/bus"
	"encodercode-go/config"
	"encodercode-go/encoder"
	"encodercode-go/errcode"
	"encodercode-go/hwcount"
	"encodercode-go/report"
)

type recorder struct {
	mu   sync.Mutex
	last map[string]report.Report
}

func (r *recorder) Report(rep report.Report) {
	r.mu.Lock()
	if r.last == nil {
		r.last = map[string]report.Report{}
	}
	r.last[rep.Name] = rep
	r.mu.Unlock()
}

func (r *recorder) get(name string) (report.Report, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.last[name]
	return rep, ok
}

func testConfig(transport string) config.Config {
	return config.Config{
		Transport: transport,
		Encoders: []config.Encoder{
			{Name: "enc1", PPR: 100, SampleMs: 1, PollMs: 1},
			{Name: "enc2", PPR: 100, Direction: "reverse", SampleMs: 1, PollMs: 1},
		},
	}
}

func TestTransportsDeliverLatestCount(t *testing.T) {
	for _, transport := range []string{config.TransportAtomic, config.TransportChannel, config.TransportBus} {
		t.Run(transport, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sims := map[string]*hwcount.Sim{}
			src := func(e config.Encoder) (encoder.CounterSource, error) {
				s := hwcount.NewSim(65500)
				sims[e.Name] = s
				return s, nil
			}
			rec := &recorder{}
			ps, err := Build(testConfig(transport), src, rec, bus.NewBus(4))
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if (ps[0].Cell != nil) != (transport == config.TransportAtomic) {
				t.Fatalf("Cell set = %v", ps[0].Cell != nil)
			}
			StartAll(ctx, ps)

			for i := 0; i < 10; i++ {
				sims["enc1"].Step(40)
				sims["enc2"].Step(40)
				time.Sleep(time.Millisecond)
			}
			waitReport(t, rec, "enc1", 400, 1)
			waitReport(t, rec, "enc2", -400, -1)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	okSrc := func(config.Encoder) (encoder.CounterSource, error) { return hwcount.NewSim(0), nil }

	if _, err := Build(config.Config{}, okSrc, &recorder{}, nil); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("empty config err = %v", err)
	}
	if _, err := Build(testConfig(config.TransportBus), okSrc, &recorder{}, nil); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("missing bus err = %v", err)
	}
	boom := errors.New("no timer")
	badSrc := func(config.Encoder) (encoder.CounterSource, error) { return nil, boom }
	if _, err := Build(testConfig(config.TransportAtomic), badSrc, &recorder{}, nil); !errors.Is(err, boom) {
		t.Fatalf("source err = %v", err)
	}
}

func waitReport(t *testing.T, rec *recorder, name string, count int64, rot float32) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r, ok := rec.get(name); ok && r.Count == count {
			if r.Rotations != rot {
				t.Fatalf("%s rotations = %v, want %v", name, r.Rotations, rot)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	r, _ := rec.get(name)
	t.Fatalf("%s: last report %+v, want count %d", name, r, count)
}
