package arrTree

import "fmt"

// InvalidSliceError is the panic value of From when the input is not strictly
// ascending: Prev at position At-1 is not less than Next at At.
type InvalidSliceError[T any] struct {
	At         int
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice not strictly ascending at %d: %v then %v", e.At, e.Prev, e.Next)
}

// CapacityError is the panic value when the index type can't address another node.
type CapacityError struct {
	Len uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("index type exhausted with %d slots", e.Len)
}
