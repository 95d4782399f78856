package store

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// CodeInvalidInput indicates a record without a usable key.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeDuplicateKey indicates a create for a key that already exists.
	CodeDuplicateKey ErrorCode = "DUPLICATE_KEY"

	// CodeNotFound indicates a replace or delete for a key that does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeCorruptState indicates the backing file could not be decoded
	// and the store is configured to fail rather than recover.
	CodeCorruptState ErrorCode = "CORRUPT_STATE"
)

// Error is returned for every store-level failure that a caller may want
// to translate into a response. I/O failures are returned as plain wrapped
// errors.
type Error struct {
	Code ErrorCode

	// SatCat is the key involved, if any.
	SatCat string

	// Message is a human-readable description suitable for API responses.
	Message string

	// Err is the underlying cause (decode errors for CORRUPT_STATE).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errInvalidInput(msg string) *Error {
	return &Error{Code: CodeInvalidInput, Message: msg}
}

func errDuplicateKey(satcat string) *Error {
	return &Error{
		Code:    CodeDuplicateKey,
		SatCat:  satcat,
		Message: fmt.Sprintf("An RSO with SatCat %s already exists.", satcat),
	}
}

func errNotFound(satcat string) *Error {
	return &Error{
		Code:    CodeNotFound,
		SatCat:  satcat,
		Message: NotFoundMessage(satcat),
	}
}

// NotFoundMessage is the message used for a missing key.
func NotFoundMessage(satcat string) string {
	return fmt.Sprintf("RSO with SatCat %s was not found.", satcat)
}

func hasCode(err error, code ErrorCode) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// IsInvalidInput returns true if err is an INVALID_INPUT store error.
func IsInvalidInput(err error) bool {
	return hasCode(err, CodeInvalidInput)
}

// IsDuplicateKey returns true if err is a DUPLICATE_KEY store error.
func IsDuplicateKey(err error) bool {
	return hasCode(err, CodeDuplicateKey)
}

// IsNotFound returns true if err is a NOT_FOUND store error.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsCorrupt returns true if err is a CORRUPT_STATE store error.
func IsCorrupt(err error) bool {
	return hasCode(err, CodeCorruptState)
}

// Message extracts the human-readable message from a store error, or
// returns err.Error() for anything else.
func Message(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
