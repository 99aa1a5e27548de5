// Package either implements a value which is either a Left (error payload) or a Right
// (success payload). The arm is chosen at construction and never changes. Map only
// touches Right values, a Left passes through any number of Map calls unchanged.
package either

import "fmt"

type side bool

const (
	left  side = true
	right side = false
)

type Either[L, R any] struct {
	side  side
	left  L
	right R
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{side: left, left: value}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{side: right, right: value}
}

func (e Either[L, R]) IsLeft() bool {
	return e.side == left
}

// IsRight relies on Left and Right being the only two arms.
func (e Either[L, R]) IsRight() bool {
	return !e.IsLeft()
}

// LeftValue returns the zero value of L for a Right.
func (e Either[L, R]) LeftValue() L {
	return e.left
}

// RightValue returns the zero value of R for a Left.
func (e Either[L, R]) RightValue() R {
	return e.right
}

// Value returns the payload of the arm held by e.
func (e Either[L, R]) Value() any {
	if e.IsLeft() {
		return e.left
	}
	return e.right
}

func (e Either[L, R]) Map(fn func(R) R) Either[L, R] {
	if e.IsLeft() {
		return e
	}
	return Right[L](fn(e.right))
}

func (e Either[L, R]) String() string {
	if e.IsLeft() {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}

// Map applies fn to a Right value. fn is never called for a Left.
func Map[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.IsLeft() {
		return Left[L, U](e.left)
	}
	return Right[L](fn(e.right))
}
