package errors

import (
	"fmt"
	"runtime"
)

type ZXError struct {
	call string
	code ErrorType
	err  error
}

func (e *ZXError) Error() string {
	str := e.err.Error()
	if e.code != "" {
		str += fmt.Sprintf(" [code:%s]", e.code)
	}
	if e.call != "" {
		str += fmt.Sprintf(" at %s", e.call)
	}

	return str
}

func (e *ZXError) Unwrap() error {
	return e.err
}

// Is 按错误码比较，调用方可以直接 errors.Is(err, ErrHeapFull)
func (e *ZXError) Is(target error) bool {
	if t, ok := target.(ErrorType); ok {
		return e.code != "" && e.code == t
	}
	if t, ok := target.(*ZXError); ok {
		return e.code != "" && e.code == t.code
	}
	return false
}

func callinfo() string {
	_, f, l, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", f, l)
}
