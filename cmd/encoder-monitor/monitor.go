//go:build !rp2040 && !rp2350

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"encodercode-go/report"
)

// monitor tracks the last report per encoder.
type monitor struct {
	last map[string]report.Report
	bad  int
}

// run consumes lines until EOF.
func (m *monitor) run(in io.Reader, out io.Writer) error {
	if m.last == nil {
		m.last = map[string]report.Report{}
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		m.line(sc.Text(), out)
	}
	return sc.Err()
}

func (m *monitor) line(s string, out io.Writer) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	r, err := report.ParseLine(s)
	if err != nil {
		m.bad++
		log.Printf("skipping %q: %v", s, err)
		return
	}
	prev, seen := m.last[r.Name]
	m.last[r.Name] = r
	if !seen {
		fmt.Fprintf(out, "%s: %d counts (%.3f rev)\n", r.Name, r.Count, r.Rotations)
		return
	}
	fmt.Fprintf(out, "%s: %d counts (%.3f rev, %+d)\n", r.Name, r.Count, r.Rotations, r.Count-prev.Count)
}
