//go:build rp2040 || rp2350

// cmd/encoder-channel/main.go
//
// Two encoders published through single-slot overwrite channels. Each
// reporter waits for the newest count and prints it when it changed,
// on USB serial and on UART1 for a host running encoder-monitor.
package main

import (
	"context"
	"io"
	"machine"
	"time"

	"github.com/jangala-dev/tinygo-uartx/uartx"

	"encodercode-go/config"
	"encodercode-go/encoder"
	"encodercode-go/hwcount"
	"encodercode-go/pipeline"
	"encodercode-go/report"
)

var (
	uart = uartx.UART1
	tx   = uartx.UART1_TX_PIN // Pico: GP8
	rx   = uartx.UART1_RX_PIN // Pico: GP9
)

func main() {
	time.Sleep(2 * time.Second)
	ctx := context.Background()

	var out io.Writer = machine.Serial
	if err := uart.Configure(uartx.UARTConfig{BaudRate: 115200, TX: tx, RX: rx}); err != nil {
		println("[main] uart1 configure error, USB only")
	} else {
		out = io.MultiWriter(machine.Serial, uart)
	}

	cfg, err := config.Load("pico_channel")
	if err != nil {
		println("[main] config:", err.Error())
		halt()
	}
	ps, err := pipeline.Build(cfg, quadratureSource, report.NewLineSink(out), nil)
	if err != nil {
		println("[main] build:", err.Error())
		halt()
	}
	pipeline.StartAll(ctx, ps)
	println("[main] sampling", len(ps), "encoders")

	select {}
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
