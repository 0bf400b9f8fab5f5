package usecase

import "fmt"

type ErrorCode string

// ErrorChatCreation is the only code that crosses the orchestrator boundary:
// the creation call failed or was rejected, nothing was created, no uploads
// were attempted. Per-file upload failures never become a *Error.
const ErrorChatCreation ErrorCode = "CHAT_CREATION_ERROR"

type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
