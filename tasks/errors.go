package tasks

import (
	"errors"
	"fmt"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
)

// ErrorKind categorizes a task failure. Local configuration problems are
// validation errors; everything else is the classification of a remote or
// storage failure, decided once at the task boundary.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuthentication
	KindRateLimit
	KindNotFound
	KindConflict
	KindRemote
	KindStorageIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindRateLimit:
		return "rate_limit"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindRemote:
		return "remote"
	case KindStorageIO:
		return "storage_io"
	default:
		return "unknown"
	}
}

// Error is the single failure type a task returns. Message is what the flow
// run shows; Cause preserves the underlying client error for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap lets errors.Is / errors.As reach the cause chain.
func (e *Error) Unwrap() error { return e.Cause }

func newError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// kindOf returns the classification of err, or -1 when err is not a task
// error.
func kindOf(err error) ErrorKind {
	var taskErr *Error
	if errors.As(err, &taskErr) {
		return taskErr.Kind
	}
	return -1
}

// IsValidation reports whether err is a configuration problem.
func IsValidation(err error) bool { return kindOf(err) == KindValidation }

// IsNotFound reports whether err is a failed remote path lookup.
func IsNotFound(err error) bool { return kindOf(err) == KindNotFound }

// IsConflict reports whether err is an existing-destination conflict.
func IsConflict(err error) bool { return kindOf(err) == KindConflict }

// Failure messages shared by every operation.
const (
	msgInvalidToken = "invalid access token. Please check your secret or token"
	msgRateLimited  = "API rate limit exceeded. Please wait before trying again"
)

// apiFailure carries the operation-specific messages classify uses when the
// remote call fails. Empty notFound/conflict fall through to the generic
// remote message, which always includes the upstream error summary.
type apiFailure struct {
	op       string
	notFound string
	conflict string
}

// classify maps a remote-call failure into the task error taxonomy. Errors
// that are not Dropbox API errors (transport failures, cancellation) pass
// through untouched.
func classify(err error, f apiFailure) error {
	apiErr := dropbox.AsAPIError(err)
	if apiErr == nil {
		return err
	}

	switch {
	case apiErr.IsAuth():
		return newError(KindAuthentication, msgInvalidToken, apiErr)
	case apiErr.IsRateLimit():
		return newError(KindRateLimit, msgRateLimited, apiErr)
	case apiErr.IsNotFound() && f.notFound != "":
		return newError(KindNotFound, f.notFound, apiErr)
	case apiErr.IsConflict() && f.conflict != "":
		return newError(KindConflict, f.conflict, apiErr)
	default:
		return newError(KindRemote, fmt.Sprintf("could not %s: %s", f.op, apiErr.Summary), apiErr)
	}
}
