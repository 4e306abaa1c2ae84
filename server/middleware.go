package server

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogHandler 记录每个请求，并把 panic 转成 500
func LogHandler(l *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		errField := callNext(ctx)

		fields := []zap.Field{
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("query", ctx.Request.URL.RawQuery),
			zap.String("remote", ctx.Request.RemoteAddr),
			zap.Duration("latency", time.Since(start)),
		}
		if errField != nil {
			fields = append(fields, *errField, zap.Int("status", http.StatusInternalServerError))
			l.Error("request panic", fields...)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal"})
			return
		}

		fields = append(fields, zap.Int("status", ctx.Writer.Status()))
		if len(ctx.Errors) > 0 {
			fields = append(fields, zap.String("errors", ctx.Errors.String()))
			l.Warn("request", fields...)
			return
		}
		l.Info("request", fields...)
	}
}

// 执行next并处理异常
func callNext(ctx *gin.Context) (res *zapcore.Field) {
	defer func() {
		if err := recover(); err != nil {
			size := 10
			arr := make([]string, 0, size)
			for i := 1; i < size; i++ {
				_, file, line, ok := runtime.Caller(i)
				if !ok {
					break
				}
				if strings.Contains(file, "/runtime/") || strings.Contains(file, "/reflect/") {
					continue
				}
				arr = append(arr, fmt.Sprintf("%s:%d", file, line))
			}
			field := zap.String("stack", fmt.Sprintf("%v: %s", err, strings.Join(arr, " <- ")))
			res = &field
		}
	}()
	ctx.Next()
	return nil
}
