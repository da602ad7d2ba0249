package main

import (
	"errors"
	"fmt"
	"strconv"
)

// InvalidInputError is a token that isn't an integer. It never reaches a tree.
type InvalidInputError struct {
	Input string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid value %q: %v", e.Input, e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// parseValues converts every token or none.
func parseValues(args []string) ([]int, error) {
	vs := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) {
				err = ne.Err
			}
			return nil, &InvalidInputError{a, err}
		}
		vs = append(vs, v)
	}
	return vs, nil
}
