package math

import "golang.org/x/exp/constraints"

func DivCeil[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	if dividend%divisor == 0 {
		return base
	}
	return base + 1
}

func DivFloor[T constraints.Integer](dividend, divisor T) T {
	return dividend / divisor
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
