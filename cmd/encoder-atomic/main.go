//go:build rp2040 || rp2350

// cmd/encoder-atomic/main.go
//
// Two encoders, each sampled every 5 ms into an atomic cell. Reporters
// poll the cells every 500 ms and print changes on USB serial.
package main

import (
	"context"
	"machine"
	"time"

	"encodercode-go/config"
	"encodercode-go/encoder"
	"encodercode-go/hwcount"
	"encodercode-go/pipeline"
	"encodercode-go/report"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	ctx := context.Background()

	cfg, err := config.Load("pico")
	if err != nil {
		println("[main] config:", err.Error())
		halt()
	}
	// Snapshots below read the cells directly.
	if cfg.TransportName() != config.TransportAtomic {
		println("[main] pico board must use the atomic transport, got", cfg.TransportName())
		halt()
	}

	ps, err := pipeline.Build(cfg, quadratureSource, report.NewLineSink(machine.Serial), nil)
	if err != nil {
		println("[main] build:", err.Error())
		halt()
	}
	pipeline.StartAll(ctx, ps)
	println("[main] sampling", len(ps), "encoders")
	for _, p := range ps {
		println("[main]", p.Name, p.Encoder.Resolution(), "counts/rev", p.Encoder.Direction().String())
	}

	// The cells take any number of readers; print a raw snapshot now
	// and then alongside the reporters.
	for {
		time.Sleep(10 * time.Second)
		for _, p := range ps {
			if p.Cell != nil {
				println("[snap]", p.Name, p.Cell.Load())
			}
		}
	}
}

func quadratureSource(e config.Encoder) (encoder.CounterSource, error) {
	q, err := hwcount.NewQuadrature(machine.Pin(e.PinA), machine.Pin(e.PinB))
	if err != nil {
		return nil, err
	}
	return q, nil
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
