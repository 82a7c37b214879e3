//go:build rp2040 || rp2350

package hwcount

import (
	"machine"

	"tinygo.org/x/drivers/encoders"
)

// Quadrature decodes two phase pins with pin-change interrupts and
// exposes the low 16 bits of the edge count, behaving like a timer
// peripheral in encoder mode.
type Quadrature struct {
	dev *encoders.QuadratureDevice
}

// NewQuadrature configures pinA/pinB for 4x decoding: every edge of
// both phases moves the count by one.
func NewQuadrature(pinA, pinB machine.Pin) (*Quadrature, error) {
	dev := encoders.NewQuadratureViaInterrupt(pinA, pinB)
	if err := dev.Configure(encoders.QuadratureConfig{Precision: 1}); err != nil {
		return nil, err
	}
	return &Quadrature{dev: dev}, nil
}

func (q *Quadrature) Count() uint16 { return uint16(q.dev.Position()) }
