package errors

import (
	"errors"
)

const (
	ErrInvalidArgument ErrorType = "invalid_argument" // 参数错误，例如容量不是正数
	ErrHeapFull        ErrorType = "heap_full"        // 堆已满
	ErrEmptyHeap       ErrorType = "empty_heap"       // 堆为空
)

type ErrorType string

func (t ErrorType) Error() string {
	return string(t)
}

func NewCode(c ErrorType, msg string) error {
	return &ZXError{call: callinfo(), code: c, err: errors.New(msg)}
}

func WithCode(c ErrorType, err error) error {
	return &ZXError{call: callinfo(), code: c, err: err}
}

// CodeOf 返回错误链上第一个错误码，没有则为空
func CodeOf(err error) ErrorType {
	var t ErrorType
	if errors.As(err, &t) {
		return t
	}
	var zx *ZXError
	if errors.As(err, &zx) {
		return zx.code
	}
	return ""
}
