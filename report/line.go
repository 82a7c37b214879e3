package report

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"encodercode-go/errcode"
	"encodercode-go/x/conv"
)

// LineSink writes one text line per report:
//
//	enc1 count=-250 rot=-0.031
//
// It formats without fmt so it is cheap on the MCU.
type LineSink struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: w, buf: make([]byte, 0, 64)}
}

func (s *LineSink) Report(r Report) {
	s.mu.Lock()
	s.buf = AppendLine(s.buf[:0], r)
	_, _ = s.w.Write(s.buf)
	s.mu.Unlock()
}

// AppendLine appends the wire form of r, including the trailing CRLF.
func AppendLine(dst []byte, r Report) []byte {
	var num [20]byte
	dst = append(dst, r.Name...)
	dst = append(dst, " count="...)
	dst = append(dst, conv.Itoa(num[:], r.Count)...)
	dst = append(dst, " rot="...)
	dst = conv.AppendMilli(dst, conv.Milli(r.Rotations))
	return append(dst, '\r', '\n')
}

// ParseLine is the inverse of AppendLine. Surrounding whitespace and the
// line terminator are ignored.
func ParseLine(line string) (Report, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Report{}, &errcode.E{C: errcode.InvalidLine, Op: "parse_line", Msg: line}
	}
	var r Report
	r.Name = fields[0]

	cs, ok := strings.CutPrefix(fields[1], "count=")
	if !ok {
		return Report{}, &errcode.E{C: errcode.InvalidLine, Op: "parse_line", Msg: "missing count"}
	}
	n, err := strconv.ParseInt(cs, 10, 64)
	if err != nil {
		return Report{}, &errcode.E{C: errcode.InvalidLine, Op: "parse_line", Err: err}
	}
	r.Count = n

	rs, ok := strings.CutPrefix(fields[2], "rot=")
	if !ok {
		return Report{}, &errcode.E{C: errcode.InvalidLine, Op: "parse_line", Msg: "missing rot"}
	}
	f, err := strconv.ParseFloat(rs, 32)
	if err != nil {
		return Report{}, &errcode.E{C: errcode.InvalidLine, Op: "parse_line", Err: err}
	}
	r.Rotations = float32(f)
	return r, nil
}
