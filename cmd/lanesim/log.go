package main

import (
	"context"
	"io"
	stdlog "log"

	"github.com/charmbracelet/log"
)

// newLogger 创建带时间戳的命令行日志器
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// bridgeStdLog 把各系统的标准库日志转发到 logger 的 debug 级别
//
// 非 verbose 模式下 logger 为 info 级别，系统日志因此被过滤。
func bridgeStdLog(logger *log.Logger) {
	std := logger.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel})
	stdlog.SetOutput(std.Writer())
	stdlog.SetFlags(0)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext 取出命令使用的日志器，没有时返回默认日志器
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
