// Package anyeither holds two unrelated types, Nothing and Some, which satisfy the same
// AnyEither interface. Callers check IsNothing before reading Value.
package anyeither

type AnyEither interface {
	IsNothing() bool
	Map(fn func(any) any) AnyEither
	Value() any
}

// Nothing carries an error or missing payload. Map never calls fn.
type Nothing struct {
	value any
}

func NothingOf(value any) Nothing {
	return Nothing{value: value}
}

func (n Nothing) IsNothing() bool {
	return true
}

func (n Nothing) Map(_ func(any) any) AnyEither {
	return n
}

func (n Nothing) Value() any {
	return n.value
}

type Some struct {
	value any
}

func SomeOf(value any) Some {
	return Some{value: value}
}

func (s Some) IsNothing() bool {
	return false
}

func (s Some) Map(fn func(any) any) AnyEither {
	return SomeOf(fn(s.value))
}

func (s Some) Value() any {
	return s.value
}
