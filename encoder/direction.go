package encoder

import "encodercode-go/errcode"

// Direction is the sign applied to every hardware delta.
// It is fixed when the Encoder is constructed.
type Direction int8

const (
	Forward Direction = 1
	Reverse Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "invalid"
	}
}

// ParseDirection accepts "forward"/"fwd"/"" and "reverse"/"rev".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "forward", "fwd":
		return Forward, nil
	case "reverse", "rev":
		return Reverse, nil
	}
	return 0, &errcode.E{C: errcode.InvalidDirection, Op: "parse_direction", Msg: s}
}
