// Package zlog builds the application logger: a console core on stderr,
// plus an optional rotating file core when a log file is configured.
package zlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a ready-to-use logger. logFile may be empty, in which case
// only the console core is attached.
func New(logFile string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), zapcore.InfoLevel),
	}
	if logFile != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileSink, zapcore.InfoLevel))
	}
	return zap.New(zapcore.NewTee(cores...))
}
