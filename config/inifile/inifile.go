// Package inifile reads encoder configuration from an ini style file on
// the host. Comments must start the line. Sample:
//
//	# sections to read, in order; transport is atomic, channel or bus
//	[encoders]
//	names=enc1,enc2
//	transport=channel
//
//	# direction, threshold, max_rpm and pins are optional
//	[enc1]
//	ppr=2048
//	direction=reverse
//	sample=5ms
//	poll=500ms
//	threshold=4
//	max_rpm=600
//	pins=2,3
package inifile

import (
	"strings"
	"time"

	"github.com/aamcrae/config"

	cfg "encodercode-go/config"
	"encodercode-go/errcode"
)

// Load parses and validates the file at path.
func Load(path string) (cfg.Config, error) {
	conf, err := config.ParseFile(path)
	if err != nil {
		return cfg.Config{}, &errcode.E{C: errcode.InvalidParams, Op: "parse_file", Msg: path, Err: err}
	}
	return FromConfig(conf)
}

// FromConfig builds a Config from already parsed sections.
func FromConfig(conf *config.Config) (cfg.Config, error) {
	top := conf.GetSection("encoders")
	if top == nil {
		return cfg.Config{}, &errcode.E{C: errcode.MissingSection, Op: "ini", Msg: "encoders"}
	}
	var c cfg.Config
	t, err := optArg(top, "transport")
	if err != nil {
		return cfg.Config{}, &errcode.E{C: errcode.InvalidParams, Op: "ini", Msg: "transport", Err: err}
	}
	c.Transport = t
	names := top.Get("names")
	if len(names) != 1 || len(names[0].Tokens) == 0 {
		return cfg.Config{}, &errcode.E{C: errcode.InvalidParams, Op: "ini", Msg: "names"}
	}
	for _, n := range names[0].Tokens {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		e, err := encoderSection(conf, n)
		if err != nil {
			return cfg.Config{}, err
		}
		c.Encoders = append(c.Encoders, e)
	}
	if err := c.Validate(); err != nil {
		return cfg.Config{}, err
	}
	return c, nil
}

func encoderSection(conf *config.Config, name string) (cfg.Encoder, error) {
	s := conf.GetSection(name)
	if s == nil {
		return cfg.Encoder{}, &errcode.E{C: errcode.MissingSection, Op: "ini", Msg: name}
	}
	bad := func(key string, err error) error {
		return &errcode.E{C: errcode.InvalidParams, Op: "ini", Msg: name + "." + key, Err: err}
	}
	e := cfg.Encoder{Name: name}

	var ppr int
	if n, err := s.Parse("ppr", "%d", &ppr); err != nil || n != 1 || ppr <= 0 {
		return e, bad("ppr", err)
	}
	e.PPR = uint32(ppr)

	d, err := optArg(s, "direction")
	if err != nil {
		return e, bad("direction", err)
	}
	e.Direction = d

	sample, err := duration(s, "sample")
	if err != nil {
		return e, bad("sample", err)
	}
	e.SampleMs = sample
	poll, err := duration(s, "poll")
	if err != nil {
		return e, bad("poll", err)
	}
	e.PollMs = poll

	if s.Has("threshold") {
		var v int
		if n, err := s.Parse("threshold", "%d", &v); err != nil || n != 1 || v < 0 {
			return e, bad("threshold", err)
		}
		e.Threshold = uint32(v)
	}
	if s.Has("max_rpm") {
		var v int
		if n, err := s.Parse("max_rpm", "%d", &v); err != nil || n != 1 || v < 0 {
			return e, bad("max_rpm", err)
		}
		e.MaxRPM = uint32(v)
	}
	if s.Has("pins") {
		if n, err := s.Parse("pins", "%d,%d", &e.PinA, &e.PinB); err != nil || n != 2 {
			return e, bad("pins", err)
		}
	}
	return e, nil
}

// optArg returns "" for a missing key and an error for any other
// malformed value.
func optArg(s *config.Section, key string) (string, error) {
	if !s.Has(key) {
		return "", nil
	}
	v, err := s.GetArg(key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

// duration reads a Go duration and returns it in whole milliseconds.
func duration(s *config.Section, key string) (uint32, error) {
	v, err := s.GetArg(key)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, err
	}
	if d < time.Millisecond {
		return 0, errcode.InvalidParams
	}
	return uint32(d / time.Millisecond), nil
}
