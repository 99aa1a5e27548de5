// Package container holds the smallest functor: a box with exactly one value.
package container

import "fmt"

// Container always holds a value, nil included.
type Container[T any] struct {
	value T
}

func Of[T any](value T) Container[T] {
	return Container[T]{value: value}
}

func (c Container[T]) Value() T {
	return c.value
}

// Map applies fn to the held value and wraps the result in a new container.
// A panic raised by fn is not recovered.
func (c Container[T]) Map(fn func(T) T) Container[T] {
	return Of(fn(c.value))
}

// Map is the type changing version of Container.Map.
func Map[T, U any](c Container[T], fn func(T) U) Container[U] {
	return Of(fn(c.value))
}

func (c Container[T]) String() string {
	return fmt.Sprintf("Container(%v)", c.value)
}
