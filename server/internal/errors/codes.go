package errors

import (
	"fmt"
)

// ErrorCode represents a specific error type for core operations.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a referenced entity is missing or not owned by the caller.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeTransientSource indicates a single external fetch failed and was skipped.
	ErrCodeTransientSource ErrorCode = "TRANSIENT_SOURCE_FAILURE"
	// ErrCodeGenerationTimeout indicates agenda generation exceeded its deadline.
	ErrCodeGenerationTimeout ErrorCode = "GENERATION_TIMEOUT"
	// ErrCodeLLMUnavailable indicates the text-generation backend is not available.
	ErrCodeLLMUnavailable ErrorCode = "LLM_UNAVAILABLE"
	// ErrCodeChannelNotJoined indicates the chat integration is not a member of the channel.
	ErrCodeChannelNotJoined ErrorCode = "CHANNEL_NOT_JOINED"
	// ErrCodeRateLimited indicates the chat integration was rate limited.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
	// ErrCodeInternal indicates an unclassified internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError represents a structured error for core operations.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Convenience constructors for common error types.

// NotFound creates a not found error. Authorization failures use the same
// code so that callers cannot distinguish "missing" from "not yours".
func NotFound(msg string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with a formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *AppError {
	return &AppError{Code: ErrCodeInvalidArgument, Message: msg}
}

// TransientSource creates a transient source failure error.
func TransientSource(msg string, cause error) *AppError {
	return &AppError{Code: ErrCodeTransientSource, Message: msg, Cause: cause}
}

// GenerationTimeout creates a generation timeout error.
func GenerationTimeout(cause error) *AppError {
	return &AppError{Code: ErrCodeGenerationTimeout, Message: "agenda generation timed out", Cause: cause}
}

// LLMUnavailable creates an LLM unavailable error.
func LLMUnavailable(msg string) *AppError {
	return &AppError{Code: ErrCodeLLMUnavailable, Message: msg}
}

// ChannelNotJoined creates a channel not joined error.
func ChannelNotJoined(channel string) *AppError {
	return &AppError{Code: ErrCodeChannelNotJoined, Message: fmt.Sprintf("not a member of channel %s", channel)}
}

// RateLimited creates a rate limited error.
func RateLimited(msg string) *AppError {
	return &AppError{Code: ErrCodeRateLimited, Message: msg}
}

// Internal creates an internal error.
func Internal(msg string, cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: msg, Cause: cause}
}

// Wrap wraps an existing error with a code and message.
func Wrap(cause error, code ErrorCode, msg string) *AppError {
	return &AppError{Code: code, Message: msg, Cause: cause}
}

// IsCode checks if an error carries a specific code, unwrapping as needed.
func IsCode(err error, code ErrorCode) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			return appErr.Code == code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// GetCodeFromError extracts the error code from any error.
// Returns the provided default code if the error is not an AppError.
func GetCodeFromError(err error, defaultCode ErrorCode) ErrorCode {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			return appErr.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return defaultCode
}
