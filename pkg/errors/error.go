package errors

import (
	stderrors "errors"
	"fmt"
)

// CodeMsg pairs an application error code with the message shown to callers.
// The original cause travels along for logging but is never exposed.
type CodeMsg struct {
	Code int
	Msg  string
	Err  error
}

func (e *CodeMsg) Error() string {
	return fmt.Sprintf("code=%d, msg=%s", e.Code, e.Msg)
}

func (e *CodeMsg) Unwrap() error {
	return e.Err
}

func New(code int, msg string) error {
	return &CodeMsg{Code: code, Msg: msg}
}

func Wrap(code int, msg string, err error) error {
	return &CodeMsg{Code: code, Msg: msg, Err: err}
}

// FromError pulls the CodeMsg out of an error chain, if there is one.
func FromError(err error) (*CodeMsg, bool) {
	var cm *CodeMsg
	if stderrors.As(err, &cm) {
		return cm, true
	}
	return nil, false
}
