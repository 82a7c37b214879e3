//go:build !rp2040 && !rp2350

// cmd/encoder-sim/main.go
//
// Runs the encoder pipelines on the host against simulated counters.
// Reports go to stdout, or to a serial port for testing encoder-monitor
// over a loopback cable.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/tarm/serial"

	"encodercode-go/bus"
	"encodercode-go/config"
	"encodercode-go/config/inifile"
	"encodercode-go/encoder"
	"encodercode-go/hwcount"
	"encodercode-go/pipeline"
	"encodercode-go/publish"
	"encodercode-go/report"
)

var (
	board    = flag.String("board", "sim", "Embedded board config")
	confFile = flag.String("config", "", "Ini config file (overrides -board)")
	rpm      = flag.Float64("rpm", 60, "Simulated shaft speed, negative for reverse")
	runFor   = flag.Duration("duration", 0, "Stop after this long (0 = until interrupted)")
	port     = flag.String("serial", "", "Write reports to this serial device instead of stdout")
	baud     = flag.Int("baud", 115200, "Serial baud rate")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var out io.Writer = os.Stdout
	if *port != "" {
		p, err := serial.OpenPort(&serial.Config{Name: *port, Baud: *baud})
		if err != nil {
			log.Fatalf("%s: %v", *port, err)
		}
		defer p.Close()
		out = p
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *runFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *runFor)
		defer cancel()
	}

	sims := map[string]*hwcount.Sim{}
	src := func(e config.Encoder) (encoder.CounterSource, error) {
		s := hwcount.NewSim(0)
		sims[e.Name] = s
		return s, nil
	}
	b := bus.NewBus(4)
	ps, err := pipeline.Build(cfg, src, report.NewLineSink(out), b)
	if err != nil {
		log.Fatalf("build: %v", err)
	}
	for _, e := range cfg.Encoders {
		if e.MaxRPM > 0 && abs(*rpm) > float64(e.MaxRPM) {
			log.Printf("%s: %.0f rpm exceeds max_rpm %d, counts may alias", e.Name, *rpm, e.MaxRPM)
		}
		go sims[e.Name].Spin(ctx, hwcount.CountsPerSec(*rpm, e.PPR), time.Millisecond)
	}
	pipeline.StartAll(ctx, ps)
	for _, p := range ps {
		log.Printf("%s: %d counts/rev, %s", p.Name, p.Encoder.Resolution(), p.Encoder.Direction())
	}
	log.Printf("simulating %d encoders at %.1f rpm (transport %s)", len(ps), *rpm, cfg.TransportName())

	<-ctx.Done()
	for _, p := range ps {
		count := p.Encoder.Count()
		switch {
		case p.Cell != nil:
			count = p.Cell.Load()
		case cfg.TransportName() == config.TransportBus:
			if m, ok := b.Retained(publish.CountTopic(p.Name)); ok {
				count = m.Payload.(int64)
			}
		}
		log.Printf("%s: final count %d", p.Name, count)
	}
}

func loadConfig() (config.Config, error) {
	if *confFile != "" {
		return inifile.Load(*confFile)
	}
	return config.Load(*board)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
