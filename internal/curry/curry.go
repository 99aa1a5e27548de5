// Package curry contains the helpers used to build functions out of other functions:
// currying, partial application and composition.
package curry

func Identity[T any](v T) T {
	return v
}

// Curry2 turns a function of two arguments into a chain of single argument functions.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

func Uncurry2[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

func Flip[A, B, R any](fn func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return fn(a, b)
	}
}

// PartialLeft binds the first argument of fn.
func PartialLeft[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return fn(a, b)
	}
}

// PartialRight binds the last argument of fn and leaves the first one open.
func PartialRight[A, B, R any](fn func(A, B) R, b B) func(A) R {
	return func(a A) R {
		return fn(a, b)
	}
}

// Compose returns g∘f.
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe applies fns from left to right.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		for _, fn := range fns {
			value = fn(value)
		}
		return value
	}
}
