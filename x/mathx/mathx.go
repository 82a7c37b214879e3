package mathx

import "golang.org/x/exp/constraints"

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs for signed integers. Abs of the most negative value overflows to itself.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
