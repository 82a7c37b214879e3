//go:build rp2040 || rp2350

// cmd/blink/main.go
package main

import (
	"machine"
	"time"
)

const period = 500 * time.Millisecond

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.Low()

	for {
		println("[blink] LED ON")
		led.High()
		time.Sleep(period)

		println("[blink] LED OFF")
		led.Low()
		time.Sleep(period)
	}
}
