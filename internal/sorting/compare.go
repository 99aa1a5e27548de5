// Package sorting builds comparators by partial application.
package sorting

import (
	"cmp"
	"fmt"

	"github.com/tupyy/fpintro/internal/curry"
)

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case Asc, Desc:
		return Order(s), nil
	default:
		return "", fmt.Errorf("unknown sort order '%s'", s)
	}
}

type Person struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Compare returns a comparator on the key extracted by key, suitable for slices.SortFunc.
func Compare[T any, K cmp.Ordered](order Order, key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		if order == Desc {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	}
}

// ByAge is Compare with the key bound to the age of a person; only the order is left open.
var ByAge = curry.PartialRight(Compare[Person, int], func(p Person) int { return p.Age })

var ByName = curry.PartialRight(Compare[Person, string], func(p Person) string { return p.Name })

func People() []Person {
	return []Person{
		{ID: 3, Name: "a", Age: 30},
		{ID: 2, Name: "b", Age: 20},
		{ID: 1, Name: "c", Age: 10},
	}
}
