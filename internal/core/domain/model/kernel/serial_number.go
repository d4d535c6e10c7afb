package kernel

import (
	"strings"

	"stowage/internal/pkg/errs"
)

// maxSerialNumberLength bounds the serial number so it fits the
// persistence schema and stays printable in hazard notifications.
const maxSerialNumberLength = 64

// ErrSerialNumberIsNotConstructed indicates that a SerialNumber was not created
// through the NewSerialNumber constructor. Returned when validating a zero value.
var ErrSerialNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"SerialNumber must be created via NewSerialNumber constructor",
)

// SerialNumber is a value object that uniquely identifies a cargo container.
// It is immutable: once a container is manufactured its serial number never
// changes, and every container in a fleet is expected to carry a distinct one.
//
// The zero value of SerialNumber is invalid and must be constructed through
// NewSerialNumber, which rejects empty and oversized values.
//
// Example usage:
//
//	serial, err := kernel.NewSerialNumber("KON-L-9")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(serial.String()) // "KON-L-9"
type SerialNumber struct {
	value string
}

// NewSerialNumber creates a SerialNumber from its string representation.
// Leading and trailing whitespace is trimmed before validation.
//
// Returns:
//   - SerialNumber: the constructed value object
//   - error: ValueIsRequiredError for an empty value,
//     ValueIsOutOfRangeError for a value longer than 64 characters
//
// Example:
//
//	serial, err := kernel.NewSerialNumber("KON-G-12")
//	if err != nil {
//	    return fmt.Errorf("invalid serial number: %w", err)
//	}
func NewSerialNumber(value string) (SerialNumber, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return SerialNumber{}, errs.NewValueIsRequiredError("serialNumber")
	}
	if len(value) > maxSerialNumberLength {
		return SerialNumber{}, errs.NewValueIsOutOfRangeError("serialNumber length", len(value), 1, maxSerialNumberLength)
	}

	return SerialNumber{value: value}, nil
}

// String returns the serial number as a plain string.
func (s SerialNumber) String() string {
	return s.value
}

// IsEqual compares two serial numbers for equality.
//
// Example:
//
//	a, _ := kernel.NewSerialNumber("KON-C-1")
//	b, _ := kernel.NewSerialNumber("KON-C-1")
//	fmt.Println(a.IsEqual(b)) // true
func (s SerialNumber) IsEqual(other SerialNumber) bool {
	return s.value == other.value
}

// Validate checks if the SerialNumber is properly constructed.
// Returns ErrSerialNumberIsNotConstructed for a zero value.
func (s SerialNumber) Validate() error {
	if s.value == "" {
		return ErrSerialNumberIsNotConstructed
	}
	return nil
}
