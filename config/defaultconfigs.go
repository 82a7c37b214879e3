package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: board name
// Val: raw JSON bytes for that board
// -----------------------------------------------------------------------------

// Two 2048 PPR encoders sampled every 5 ms. At 600 RPM that is 410
// counts per sample, far inside the half range.
const cfgPico = `{
  "transport": "atomic",
  "encoders": [
    {"name": "enc1", "ppr": 2048, "direction": "forward", "sample_ms": 5, "poll_ms": 500, "max_rpm": 600, "pin_a": 2, "pin_b": 3},
    {"name": "enc2", "ppr": 2048, "direction": "forward", "sample_ms": 5, "poll_ms": 500, "max_rpm": 600, "pin_a": 4, "pin_b": 5}
  ]
}`

const cfgPicoChannel = `{
  "transport": "channel",
  "encoders": [
    {"name": "enc1", "ppr": 2048, "direction": "forward", "sample_ms": 5, "poll_ms": 500, "max_rpm": 600, "pin_a": 2, "pin_b": 3},
    {"name": "enc2", "ppr": 2048, "direction": "forward", "sample_ms": 5, "poll_ms": 500, "max_rpm": 600, "pin_a": 4, "pin_b": 5}
  ]
}`

// Host simulation: one slow and one fast reverse-mounted shaft.
const cfgSim = `{
  "transport": "bus",
  "encoders": [
    {"name": "enc1", "ppr": 2048, "sample_ms": 5, "poll_ms": 500, "max_rpm": 120},
    {"name": "enc2", "ppr": 600, "direction": "reverse", "sample_ms": 10, "poll_ms": 250, "threshold": 40, "max_rpm": 3000}
  ]
}`

var embeddedConfigs = map[string][]byte{
	"pico":         []byte(cfgPico),
	"pico_channel": []byte(cfgPicoChannel),
	"sim":          []byte(cfgSim),
}
