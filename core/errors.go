package core

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific form field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a client-side validation failure: it is raised before
// any network call is made and lists every violated rule.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// Messages returns the violated rules in the order they were reported.
func (err ValidationError) Messages() []string {
	msgs := make([]string, 0, len(err.Fields))
	for _, fld := range err.Fields {
		msgs = append(msgs, fld.Error)
	}
	if len(msgs) == 0 && err.Err != nil {
		msgs = append(msgs, err.Err.Error())
	}
	return msgs
}

// RemoteError is a failure reported by the records backend: a non-2xx
// response whose body carried an `error` string or an `errores` list.
// Transport failures (no response at all) are plain wrapped errors and must
// remain distinguishable from this type.
type RemoteError struct {
	StatusCode int
	Messages   []string
}

func NewRemoteError(statusCode int, messages ...string) *RemoteError {
	if len(messages) == 0 {
		messages = []string{http.StatusText(statusCode)}
	}
	return &RemoteError{StatusCode: statusCode, Messages: messages}
}

func (err RemoteError) Error() string {
	return fmt.Sprintf("records API: %d: %s", err.StatusCode, strings.Join(err.Messages, "; "))
}

// AsRemoteError unwraps err down to a *RemoteError, if it is one.
func AsRemoteError(err error) (*RemoteError, bool) {
	rerr, ok := errors.Cause(err).(*RemoteError)
	return rerr, ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
