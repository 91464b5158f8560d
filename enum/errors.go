// SPDX-License-Identifier: EPL-2.0

package enum

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownValue indicates a code outside a closed enumeration
	ErrUnknownValue = errors.New("unknown enum value")
)

// UnknownValueError reports a code that does not belong to the named
// enumeration.
type UnknownValueError struct {
	Enum  string
	Value uint64
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s value %d (%#x)", e.Enum, e.Value, e.Value)
}

func (e *UnknownValueError) Unwrap() error { return ErrUnknownValue }

func unknown(enum string, v uint64) error {
	return &UnknownValueError{Enum: enum, Value: v}
}
