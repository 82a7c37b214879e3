//go:build !rp2040 && !rp2350

// cmd/encoder-monitor/main.go
//
// Reads encoder report lines from a serial port (UART1 of a board
// running encoder-channel) and logs each encoder's position.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/tarm/serial"
)

var (
	port  = flag.String("serial", "/dev/ttyUSB0", "Serial device")
	baud  = flag.Int("baud", 115200, "Baud rate")
	stdin = flag.Bool("stdin", false, "Read lines from stdin instead of a serial port")
)

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if !*stdin {
		p, err := serial.OpenPort(&serial.Config{Name: *port, Baud: *baud})
		if err != nil {
			log.Fatalf("%s: %v", *port, err)
		}
		defer p.Close()
		in = p
	}

	var m monitor
	if err := m.run(in, os.Stdout); err != nil {
		log.Fatalf("read: %v", err)
	}
}
