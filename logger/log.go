package logger

import (
	"os"
	"path"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wwqdrh/minheap/utils"
)

const baseLog = "minheap.log"

type Config struct {
	Dir   string // 日志目录，为空时只输出到标准输出
	Level string // debug|info|warn|error
}

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "time",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.LowercaseLevelEncoder,  // 小写编码器
	EncodeTime:     zapcore.ISO8601TimeEncoder,     // ISO8601 UTC 时间格式
	EncodeDuration: zapcore.SecondsDurationEncoder, //
	EncodeCaller:   zapcore.ShortCallerEncoder,
	EncodeName:     zapcore.FullNameEncoder,
}

func ParseLevel(level string) (zapcore.Level, error) {
	var lev zapcore.Level
	if level == "" {
		return zap.InfoLevel, nil
	}
	if err := lev.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return lev, errors.Wrapf(err, "parse log level %q", level)
	}
	return lev, nil
}

func New(c Config) (*zap.Logger, error) {
	lev, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	enabler := zap.NewAtomicLevelAt(lev)

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.Lock(os.Stdout), enabler,
		),
	}

	if c.Dir != "" {
		if ok, _ := utils.PathExists(c.Dir); !ok {
			if err := os.MkdirAll(c.Dir, os.ModePerm); err != nil {
				return nil, errors.Wrap(err, "create log dir")
			}
		}
		logPath := path.Join(c.Dir, baseLog)

		// 每隔四小时轮转一个新文件，保留最近七天
		writer, err := rotatelogs.New(
			logPath+".%Y%m%d%H",
			rotatelogs.WithLinkName(logPath),
			rotatelogs.WithMaxAge(time.Duration(24*7)*time.Hour),
			rotatelogs.WithRotationTime(time.Duration(4)*time.Hour),
		)
		if err != nil {
			return nil, errors.Wrap(err, "open rotate log")
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(writer), enabler,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
