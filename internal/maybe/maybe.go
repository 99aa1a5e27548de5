// Package maybe implements an optional value.
//
// A Maybe is either present and holds a value, or it is absent. Absence is absorbing:
// mapping an absent Maybe never calls the mapping function and yields another absent Maybe.
//
// Two policies decide which values count as absent when a Maybe is built:
//
//	maybe.Of(0)         // absent: Strict treats falsy values as missing
//	maybe.OfNullable(0) // present: Lenient only treats nil as missing
//
// The policy is carried along by Map, so a strict chain re-collapses to absent as soon
// as a step returns a falsy value.
package maybe

import (
	"errors"
	"fmt"
)

var ErrEmptyValue = errors.New("provided value must not be empty")

type Maybe[T any] struct {
	value   T
	present bool
	policy  Policy
}

func wrap[T any](value T, policy Policy) Maybe[T] {
	if policy.absent(value) {
		return Maybe[T]{policy: policy}
	}
	return Maybe[T]{value: value, present: true, policy: policy}
}

// Of wraps value with the Strict policy.
func Of[T any](value T) Maybe[T] {
	return wrap(value, Strict)
}

// OfNullable wraps value with the Lenient policy.
func OfNullable[T any](value T) Maybe[T] {
	return wrap(value, Lenient)
}

// Just asserts that value is present. It returns ErrEmptyValue for falsy values.
func Just[T any](value T) (Maybe[T], error) {
	m := Of(value)
	if m.IsNothing() {
		return m, ErrEmptyValue
	}
	return m, nil
}

// MustJust is like Just but panics on empty values.
func MustJust[T any](value T) Maybe[T] {
	m, err := Just(value)
	if err != nil {
		panic(err)
	}
	return m
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{policy: Strict}
}

func (m Maybe[T]) IsNothing() bool {
	return !m.present
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

func (m Maybe[T]) Policy() Policy {
	return m.policy
}

// Get returns the held value and true, or the zero value and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// GetOrElse returns the held value or defaultValue if m is absent.
func (m Maybe[T]) GetOrElse(defaultValue T) T {
	if m.present {
		return m.value
	}
	return defaultValue
}

// ToPtr returns nil for an absent Maybe.
func (m Maybe[T]) ToPtr() *T {
	if !m.present {
		return nil
	}
	v := m.value
	return &v
}

func (m Maybe[T]) Map(fn func(T) T) Maybe[T] {
	return Map(m, fn)
}

func (m Maybe[T]) FlatMap(fn func(T) Maybe[T]) Maybe[T] {
	return FlatMap(m, fn)
}

func (m Maybe[T]) String() string {
	if !m.present {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// Map applies fn to a present value and wraps the result with the policy of m.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if !m.present {
		return Maybe[U]{policy: m.policy}
	}
	return wrap(fn(m.value), m.policy)
}

// FlatMap returns the Maybe produced by fn as is.
func FlatMap[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if !m.present {
		return Maybe[U]{policy: m.policy}
	}
	return fn(m.value)
}

func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	return FlatMap(m, func(inner Maybe[T]) Maybe[T] { return inner })
}
