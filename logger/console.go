package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewConsole 命令行输出用的 zerolog，人类可读格式
func NewConsole(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}
