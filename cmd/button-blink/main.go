//go:build rp2040 || rp2350

// cmd/button-blink/main.go
package main

import (
	"context"
	"machine"
	"time"

	"encodercode-go/gpio"
)

// Button between GP15 and ground, using the internal pull-up.
const (
	buttonPin = machine.GP15
	debounce  = 20 * time.Millisecond
)

func main() {
	ctx := context.Background()
	led := gpio.Output(machine.LED, false)
	button := gpio.Input(buttonPin, gpio.PullUp)

	w := gpio.NewWatcher(8, 8)
	w.Start(ctx)
	if _, err := w.Watch(button, gpio.EdgeBoth, debounce, false); err != nil {
		println("[button] watch failed:", err.Error())
		halt()
	}

	go buttonBlink(ctx, w, led, button.Number())

	for {
		println("[main] hello, world")
		time.Sleep(time.Second)
	}
}

// buttonBlink lights the LED while the button is held.
func buttonBlink(ctx context.Context, w *gpio.Watcher, led gpio.Pin, pin int) {
	for {
		if _, err := w.WaitFor(ctx, pin, gpio.EdgeFalling); err != nil {
			return
		}
		led.Set(true)
		println("[button] led turned on")

		if _, err := w.WaitFor(ctx, pin, gpio.EdgeRising); err != nil {
			return
		}
		led.Set(false)
		println("[button] led turned off")
	}
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
