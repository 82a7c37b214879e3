// Package conv formats numbers into caller buffers without fmt or
// strconv, for MCU log lines.
package conv

// Utoa writes the base-10 form of n into the tail of buf and returns the
// used slice. buf should be at least 20 bytes.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	if i == 0 {
		return buf
	}
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 || i == 0 {
			return buf[i:]
		}
	}
}

// Itoa is Utoa with a leading '-' for negative n.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	if len(buf) < 2 {
		return buf[:0]
	}
	// uint64(-n) is correct for math.MinInt64 too.
	d := Utoa(buf[1:], uint64(-n))
	start := len(buf) - len(d) - 1
	buf[start] = '-'
	return buf[start:]
}
