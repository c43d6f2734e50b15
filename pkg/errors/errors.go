// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

// Recipe book error kinds. Every core operation fails with exactly one of these.
const (
	// ErrCodeEmptyField indicates a required text field is blank after trimming.
	ErrCodeEmptyField ErrorCode = "EMPTY_FIELD"
	// ErrCodeInvalidDuration indicates a duration that is not a non-negative integer.
	ErrCodeInvalidDuration ErrorCode = "INVALID_DURATION"
	// ErrCodeCapacityExceeded indicates the book cannot hold more recipes.
	ErrCodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"
	// ErrCodeDuplicateTitle indicates a normalized title collision.
	ErrCodeDuplicateTitle ErrorCode = "DUPLICATE_TITLE"
	// ErrCodeIndexOutOfRange indicates a store index or selection position that does not exist.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	// ErrCodeSchemaMismatch indicates an interchange header that is not Judul,Bahan,Langkah,Waktu.
	ErrCodeSchemaMismatch ErrorCode = "SCHEMA_MISMATCH"
	// ErrCodeRowShape indicates an interchange row with too few columns.
	ErrCodeRowShape ErrorCode = "ROW_SHAPE"
	// ErrCodeRowValue indicates an interchange row with empty or malformed values.
	ErrCodeRowValue ErrorCode = "ROW_VALUE"
	// ErrCodeEmptyStore indicates an operation that needs at least one recipe.
	ErrCodeEmptyStore ErrorCode = "EMPTY_STORE"
	// ErrCodeIOFailure indicates a read or write of an interchange location failed.
	ErrCodeIOFailure ErrorCode = "IO_FAILURE"
)

// Transport level error kinds used by the HTTP API.
const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeRateLimitExceeded indicates the client exceeded an enforced request limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not allowed for the resource.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeUnavailable indicates a service or resource is temporarily unavailable.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// StructuredError provides structured error information.
// It includes an error code for programmatic handling, a short message,
// the underlying cause, and optional context (field, line, title) for callers
// that need to build their own user-facing text.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the code of the first StructuredError in err's chain,
// or an empty code when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		var se *StructuredError
		if !stderrors.As(err, &se) {
			return false
		}
		if se.Code == code {
			return true
		}
		err = se.Cause
	}
	return false
}

// ContextValue returns a context entry of the first StructuredError in err's chain.
func ContextValue(err error, key string) (any, bool) {
	var se *StructuredError
	if !stderrors.As(err, &se) || se.Context == nil {
		return nil, false
	}
	v, ok := se.Context[key]
	return v, ok
}
