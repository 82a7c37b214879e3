// Package pipeline wires configured encoders to their sampling loop,
// publisher and reporter. The Encoder is built once; the transport only
// decides which Publisher and Source pair connects the two goroutines.
package pipeline

import (
	"context"

	"encodercode-go/bus"
	"encodercode-go/config"
	"encodercode-go/encoder"
	"encodercode-go/errcode"
	"encodercode-go/publish"
	"encodercode-go/report"
	"encodercode-go/sampler"
)

// Pipeline is one encoder with its two cooperating tasks.
type Pipeline struct {
	Name     string
	Encoder  *encoder.Encoder
	Loop     *sampler.Loop
	Reporter *report.Reporter
	// Cell is set for the atomic transport; other readers may Load it.
	Cell *publish.Cell
}

// Start launches the sampling loop and the reporter.
func (p *Pipeline) Start(ctx context.Context) {
	p.Loop.Start(ctx)
	go p.Reporter.Run(ctx)
}

// SourceFunc returns the hardware counter for a configured encoder.
type SourceFunc func(e config.Encoder) (encoder.CounterSource, error)

// Build creates one Pipeline per configured encoder. b is only used by
// the bus transport and may be nil otherwise.
func Build(cfg config.Config, src SourceFunc, sink report.Sink, b *bus.Bus) ([]*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.TransportName() == config.TransportBus && b == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "build", Msg: "bus transport needs a bus"}
	}
	out := make([]*Pipeline, 0, len(cfg.Encoders))
	for _, ec := range cfg.Encoders {
		hw, err := src(ec)
		if err != nil {
			return nil, &errcode.E{C: errcode.Error, Op: "build", Msg: ec.Name, Err: err}
		}
		p := &Pipeline{Name: ec.Name, Encoder: encoder.New(hw, ec.PPR, ec.Dir())}

		var pub publish.Publisher
		var rsrc report.Source
		switch cfg.TransportName() {
		case config.TransportChannel:
			s := publish.NewSlot()
			pub, rsrc = s, s
		case config.TransportBus:
			pub = publish.NewTopic(b.NewConnection(), ec.Name)
			rsrc = publish.Subscribe(b.NewConnection(), ec.Name)
		default:
			c := publish.NewCell()
			p.Cell = c
			pub, rsrc = c, c
		}

		p.Loop = sampler.New(p.Encoder, pub, ec.SampleInterval())
		p.Reporter = report.New(report.Config{
			Name:       ec.Name,
			Resolution: ec.Resolution(),
			Poll:       ec.PollInterval(),
			Threshold:  ec.Threshold,
		}, rsrc, sink)
		out = append(out, p)
	}
	return out, nil
}

// StartAll starts every pipeline.
func StartAll(ctx context.Context, ps []*Pipeline) {
	for _, p := range ps {
		p.Start(ctx)
	}
}
