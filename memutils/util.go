package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint
}

func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// NextPow2 returns the smallest power of two greater than or equal to number.
// NextPow2(0) is 1.
func NextPow2[T Number](number T) T {
	result := T(1)
	for result < number {
		result <<= 1
	}
	return result
}
