// Package errorcodes defines host command response errors using a structured type.
// ResponseError holds the two-character code and human-readable description.
package errorcodes

import (
	"errors"

	"github.com/pinlabs/pinblock/pkg/pinblock"
)

// Predefined response error instances. Codes follow the Thales host
// command convention used by most PIN translation hosts.
var (
	Err00 = ResponseError{"00", "No error"}
	Err15 = ResponseError{
		"15",
		"Invalid input data (invalid format, invalid characters, or not enough data provided)",
	}
	Err20 = ResponseError{"20", "PIN block does not contain valid values"}
	Err22 = ResponseError{"22", "Invalid account number"}
	Err23 = ResponseError{"23", "Invalid PIN block format code"}
	Err24 = ResponseError{"24", "PIN is fewer than 4 or more than 12 digits in length"}
	Err41 = ResponseError{"41", "Internal hardware/software error: bad RAM, invalid error codes, etc."}
	Err68 = ResponseError{"68", "Command has been disabled"}
	Err80 = ResponseError{"80", "Data length error"}
)

// ResponseError represents a host response error with its code and description.
type ResponseError struct {
	Code        string // two-character error code
	Description string // human-readable description
}

// Error implements the Go error interface: "<Code>: <Description>".
func (e ResponseError) Error() string {
	return e.Code + ": " + e.Description
}

// CodeOnly returns only the error code (e.g., "68"), for embedding in responses.
func (e ResponseError) CodeOnly() string {
	return e.Code
}

// FromError maps a pinblock codec error to its response error.
func FromError(err error) ResponseError {
	switch {
	case err == nil:
		return Err00
	case errors.Is(err, pinblock.ErrInvalidPinLength):
		return Err24
	case errors.Is(err, pinblock.ErrInvalidPan):
		return Err22
	case errors.Is(err, pinblock.ErrUnsupportedSize):
		return Err80
	case errors.Is(err, pinblock.ErrWrongFormat),
		errors.Is(err, pinblock.ErrUnsupportedFormat):
		return Err23
	case errors.Is(err, pinblock.ErrIntegrityCheck):
		return Err20
	case errors.Is(err, pinblock.ErrNonceTooShort),
		errors.Is(err, pinblock.ErrInvalidArgument):
		return Err15
	default:
		return Err41
	}
}
