package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is returned when a selection line does not parse as an integer.
var ErrNotANumber = errors.New("not a number")

// ParseSelection parses a line of input as an integer selection.
// Surrounding whitespace is ignored.
//
// Postcondition: Returns the number, or an error wrapping ErrNotANumber.
func ParseSelection(line string) (int, error) {
	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, line)
	}
	return n, nil
}

// ParseIndex converts a 1-based selection line into a 0-based index.
//
// Postcondition: Returns the index (possibly out of range), or an error wrapping ErrNotANumber.
func ParseIndex(line string) (int, error) {
	n, err := ParseSelection(line)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}
