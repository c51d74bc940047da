package doxygen

import (
	"errors"
	"fmt"
)

// ErrMalformedAttributeList is matched by every *MalformedAttributeListError.
var ErrMalformedAttributeList = errors.New("malformed attribute list")

// MalformedAttributeListError reports a @param attribute list that is
// missing its opening '[' or closing ']'.
type MalformedAttributeListError struct {
	// Missing is the bracket that was expected, '[' or ']'.
	Missing rune
	// Offset is the rune offset in the input where Missing was expected.
	Offset int
}

func (e *MalformedAttributeListError) Error() string {
	side := "closing"
	if e.Missing == '[' {
		side = "opening"
	}
	return fmt.Sprintf("%s at offset %d: expected %s '%c' inside attribute list", ErrMalformedAttributeList, e.Offset, side, e.Missing)
}

func (e *MalformedAttributeListError) Is(target error) bool {
	return target == ErrMalformedAttributeList
}
