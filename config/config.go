// Package config holds the encoder configuration surface: typed
// settings, per-board embedded defaults and validation.
package config

import (
	"encoding/json"
	"time"

	"encodercode-go/encoder"
	"encodercode-go/errcode"
	"encodercode-go/x/strx"
)

// Publication transports.
const (
	TransportAtomic  = "atomic"
	TransportChannel = "channel"
	TransportBus     = "bus"
)

// Encoder configures one physical encoder and its reporter.
type Encoder struct {
	Name      string `json:"name"`
	PPR       uint32 `json:"ppr"`                 // native pulses per revolution, >0
	Direction string `json:"direction,omitempty"` // "forward" (default) or "reverse"
	SampleMs  uint32 `json:"sample_ms"`           // sampling period, >0
	PollMs    uint32 `json:"poll_ms"`             // reporter polling period, >0
	Threshold uint32 `json:"threshold,omitempty"` // min change to report; 0 => any change
	MaxRPM    uint32 `json:"max_rpm,omitempty"`   // 0 => sampling bound not checked
	PinA      int    `json:"pin_a"`
	PinB      int    `json:"pin_b"`
}

type Config struct {
	Transport string    `json:"transport,omitempty"` // default "atomic"
	Encoders  []Encoder `json:"encoders"`
}

func (e Encoder) SampleInterval() time.Duration {
	return time.Duration(e.SampleMs) * time.Millisecond
}

func (e Encoder) PollInterval() time.Duration {
	return time.Duration(e.PollMs) * time.Millisecond
}

// Dir parses Direction. Call Validate first; invalid values map to Forward.
func (e Encoder) Dir() encoder.Direction {
	d, err := encoder.ParseDirection(e.Direction)
	if err != nil {
		return encoder.Forward
	}
	return d
}

// Resolution is counts per revolution after 4x decoding.
func (e Encoder) Resolution() uint32 { return e.PPR * encoder.CountsPerPulse }

// MaxSampleInterval is the longest sampling period that keeps movement
// between samples within encoder.HalfRange at maxRPM.
func MaxSampleInterval(ppr, maxRPM uint32) time.Duration {
	if ppr == 0 || maxRPM == 0 {
		return 0
	}
	countsPerSec := float64(maxRPM) / 60 * float64(ppr) * encoder.CountsPerPulse
	return time.Duration(float64(encoder.HalfRange) / countsPerSec * float64(time.Second))
}

func (e Encoder) Validate() error {
	const op = "validate_encoder"
	switch {
	case e.Name == "":
		return &errcode.E{C: errcode.InvalidParams, Op: op, Msg: "missing name"}
	case e.PPR == 0:
		return &errcode.E{C: errcode.InvalidParams, Op: op, Msg: e.Name + ": ppr must be > 0"}
	case e.SampleMs == 0:
		return &errcode.E{C: errcode.InvalidParams, Op: op, Msg: e.Name + ": sample_ms must be > 0"}
	case e.PollMs == 0:
		return &errcode.E{C: errcode.InvalidParams, Op: op, Msg: e.Name + ": poll_ms must be > 0"}
	}
	if _, err := encoder.ParseDirection(e.Direction); err != nil {
		return &errcode.E{C: errcode.InvalidDirection, Op: op, Msg: e.Name + ": " + e.Direction}
	}
	if e.MaxRPM > 0 && e.SampleInterval() > MaxSampleInterval(e.PPR, e.MaxRPM) {
		return &errcode.E{C: errcode.IntervalTooLong, Op: op,
			Msg: e.Name + ": sample period " + e.SampleInterval().String() +
				" exceeds " + MaxSampleInterval(e.PPR, e.MaxRPM).String()}
	}
	return nil
}

// TransportName returns Transport with the default applied.
func (c Config) TransportName() string { return strx.Coalesce(c.Transport, TransportAtomic) }

func (c Config) Validate() error {
	switch c.TransportName() {
	case TransportAtomic, TransportChannel, TransportBus:
	default:
		return &errcode.E{C: errcode.UnknownTransport, Op: "validate", Msg: c.Transport}
	}
	if len(c.Encoders) == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "validate", Msg: "no encoders"}
	}
	seen := make(map[string]bool, len(c.Encoders))
	for _, e := range c.Encoders {
		if err := e.Validate(); err != nil {
			return err
		}
		if seen[e.Name] {
			return &errcode.E{C: errcode.DuplicateEncoderID, Op: "validate", Msg: e.Name}
		}
		seen[e.Name] = true
	}
	return nil
}

// EmbeddedConfigLookup allows overriding how board configs are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// Parse decodes and validates a JSON config document.
func Parse(raw []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(raw, &c); err != nil {
		return Config{}, &errcode.E{C: errcode.InvalidParams, Op: "parse", Err: err}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load resolves the embedded config for board.
func Load(board string) (Config, error) {
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return Config{}, &errcode.E{C: errcode.UnknownBoard, Op: "load", Msg: board}
	}
	return Parse(raw)
}

// Find returns the encoder named name.
func (c Config) Find(name string) (Encoder, bool) {
	for _, e := range c.Encoders {
		if e.Name == name {
			return e, true
		}
	}
	return Encoder{}, false
}
