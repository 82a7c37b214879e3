package conv

// AppendMilli appends v/1000 as a decimal with exactly three fraction
// digits, e.g. -1234 -> "-1.234", 5 -> "0.005".
func AppendMilli(dst []byte, v int64) []byte {
	var u uint64
	if v < 0 {
		dst = append(dst, '-')
		u = uint64(-v)
	} else {
		u = uint64(v)
	}
	var buf [20]byte
	dst = append(dst, Utoa(buf[:], u/1000)...)
	dst = append(dst, '.')
	frac := u % 1000
	dst = append(dst, byte('0'+frac/100), byte('0'+frac/10%10), byte('0'+frac%10))
	return dst
}

// Milli rounds f*1000 half away from zero.
func Milli(f float32) int64 {
	m := float64(f) * 1000
	if m < 0 {
		return int64(m - 0.5)
	}
	return int64(m + 0.5)
}
