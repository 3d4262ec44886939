package errorx

import "fmt"

type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// Is allows matching errorx errors by code with errors.Is.
func (e Error) Is(target error) bool {
	if t, ok := target.(Error); ok {
		return e.Code == t.Code
	}
	return false
}
