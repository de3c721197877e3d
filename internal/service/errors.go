package service

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Code classifies a domain error so the HTTP layer can pick a status
// without inspecting messages.
type Code int

const (
	CodeValidation Code = iota + 1
	CodeNotFound
	CodeConflict
	CodeUnauthorized
	CodeOperationFailure
)

// Error is the only error type services let escape. Storage errors are
// wrapped into one with a fixed per-operation message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

func OperationFailure(message string) *Error {
	return &Error{Code: CodeOperationFailure, Message: message}
}

// isConstraintViolation reports whether err is a postgres unique or
// exclusion violation, the database-level backstop for duplicate serials
// and overlapping passport ranges.
func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" || pqErr.Code == "23P01"
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
