//go:build rp2040 || rp2350

package gpio

import "machine"

// MachinePin adapts machine.Pin.
type MachinePin struct {
	p machine.Pin
}

func Input(p machine.Pin, pull Pull) *MachinePin {
	mode := machine.PinInput
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	}
	p.Configure(machine.PinConfig{Mode: mode})
	return &MachinePin{p: p}
}

func Output(p machine.Pin, initial bool) *MachinePin {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Set(initial)
	return &MachinePin{p: p}
}

func (m *MachinePin) Get() bool      { return m.p.Get() }
func (m *MachinePin) Set(level bool) { m.p.Set(level) }
func (m *MachinePin) Number() int    { return int(m.p) }

func (m *MachinePin) SetIRQ(edge Edge, handler func()) error {
	return m.p.SetInterrupt(toPinChange(edge), func(machine.Pin) { handler() })
}

func (m *MachinePin) ClearIRQ() error {
	var zero machine.PinChange
	return m.p.SetInterrupt(zero, nil)
}

func toPinChange(e Edge) machine.PinChange {
	switch e {
	case EdgeRising:
		return machine.PinRising
	case EdgeFalling:
		return machine.PinFalling
	default:
		return machine.PinToggle
	}
}
