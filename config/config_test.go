package config

import (
	"errors"
	"testing"
	"time"

	"encodercode-go/encoder"
	"encodercode-go/errcode"
)

func TestEmbeddedConfigsValidate(t *testing.T) {
	for board := range embeddedConfigs {
		if _, err := Load(board); err != nil {
			t.Fatalf("%s: %v", board, err)
		}
	}
}

func TestLoadPico(t *testing.T) {
	c, err := Load("pico")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.TransportName() != TransportAtomic || len(c.Encoders) != 2 {
		t.Fatalf("unexpected config: %+v", c)
	}
	e, ok := c.Find("enc2")
	if !ok {
		t.Fatal("enc2 missing")
	}
	if e.SampleInterval() != 5*time.Millisecond || e.PollInterval() != 500*time.Millisecond {
		t.Fatalf("intervals: %v %v", e.SampleInterval(), e.PollInterval())
	}
	if e.Resolution() != 8192 || e.Dir() != encoder.Forward || e.PinA != 4 || e.PinB != 5 {
		t.Fatalf("enc2 = %+v", e)
	}
	if _, ok := c.Find("enc9"); ok {
		t.Fatal("found nonexistent encoder")
	}
}

func TestLoadUnknownBoard(t *testing.T) {
	_, err := Load("nope")
	if errcode.Of(err) != errcode.UnknownBoard {
		t.Fatalf("err = %v", err)
	}
}

func TestLookupOverride(t *testing.T) {
	old := EmbeddedConfigLookup
	defer func() { EmbeddedConfigLookup = old }()
	EmbeddedConfigLookup = func(string) ([]byte, bool) {
		return []byte(`{"encoders":[{"name":"x","ppr":100,"direction":"reverse","sample_ms":1,"poll_ms":1}]}`), true
	}
	c, err := Load("anything")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.TransportName() != TransportAtomic || c.Encoders[0].Dir() != encoder.Reverse {
		t.Fatalf("config = %+v", c)
	}
}

func TestParseBadJSON(t *testing.T) {
	_, err := Parse([]byte(`{"encoders": [`))
	if !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	good := Encoder{Name: "e", PPR: 2048, SampleMs: 5, PollMs: 500}
	for _, c := range []struct {
		name string
		mut  func(*Encoder)
		want errcode.Code
	}{
		{"ok", func(*Encoder) {}, errcode.OK},
		{"no name", func(e *Encoder) { e.Name = "" }, errcode.InvalidParams},
		{"zero ppr", func(e *Encoder) { e.PPR = 0 }, errcode.InvalidParams},
		{"zero sample", func(e *Encoder) { e.SampleMs = 0 }, errcode.InvalidParams},
		{"zero poll", func(e *Encoder) { e.PollMs = 0 }, errcode.InvalidParams},
		{"bad direction", func(e *Encoder) { e.Direction = "up" }, errcode.InvalidDirection},
		{"too slow", func(e *Encoder) { e.MaxRPM = 60000; e.SampleMs = 50 }, errcode.IntervalTooLong},
		{"fast enough", func(e *Encoder) { e.MaxRPM = 600; e.SampleMs = 100 }, errcode.OK},
	} {
		e := good
		c.mut(&e)
		if got := errcode.Of(e.Validate()); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	e := Encoder{Name: "e", PPR: 1, SampleMs: 1, PollMs: 1}
	for _, c := range []struct {
		name string
		cfg  Config
		want errcode.Code
	}{
		{"ok", Config{Encoders: []Encoder{e}}, errcode.OK},
		{"bus", Config{Transport: TransportBus, Encoders: []Encoder{e}}, errcode.OK},
		{"unknown transport", Config{Transport: "carrier_pigeon", Encoders: []Encoder{e}}, errcode.UnknownTransport},
		{"empty", Config{}, errcode.InvalidParams},
		{"duplicate", Config{Encoders: []Encoder{e, e}}, errcode.DuplicateEncoderID},
	} {
		if got := errcode.Of(c.cfg.Validate()); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMaxSampleInterval(t *testing.T) {
	// 2048 PPR at 600 RPM is 81920 counts/s.
	got := MaxSampleInterval(2048, 600)
	secs := 32767.0 / 81920
	want := time.Duration(secs * float64(time.Second))
	if d := got - want; d < -time.Microsecond || d > time.Microsecond {
		t.Fatalf("MaxSampleInterval = %v, want %v", got, want)
	}
	if MaxSampleInterval(0, 600) != 0 || MaxSampleInterval(2048, 0) != 0 {
		t.Fatal("zero inputs should give 0")
	}
}
