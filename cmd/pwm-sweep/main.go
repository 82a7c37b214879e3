//go:build rp2040 || rp2350

// cmd/pwm-sweep/main.go
package main

import (
	"machine"
	"time"

	"encodercode-go/x/ramp"
	"encodercode-go/x/timex"
)

const (
	freqHz = 10_000
	steps  = 5
	dwell  = 300 * time.Millisecond
)

func main() {
	time.Sleep(2 * time.Second)

	// GP25 (on-board LED) is PWM slice 4, channel B.
	pwm := machine.PWM4
	if err := pwm.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(freqHz)}); err != nil {
		println("[pwm] configure failed:", err.Error())
		return
	}
	ch, err := pwm.Channel(machine.LED)
	if err != nil {
		println("[pwm] channel failed:", err.Error())
		return
	}

	top := pwm.Top()
	println("[pwm] max duty", top)

	ramp.Sweep(top, steps, dwell, timex.SleepTick, func(level uint32) {
		pwm.Set(ch, level)
		println("[pwm] duty", pwm.Get(ch))
	})
}
