package helper

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/sjzsdu/tdoc/share"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggerMu sync.Mutex
	logger   *zap.SugaredLogger
	logFile  string
)

// SetLogFile 设置日志文件，为空表示只输出到 stderr
// 需要在第一次调用 Logger 之前设置
func SetLogFile(path string) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logFile = path
	logger = nil
}

// ResetLogger 丢弃已创建的 logger，下次调用 Logger 时按当前 debug 状态重建
func ResetLogger() {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger != nil {
		_ = logger.Sync()
	}
	logger = nil
}

// Logger 返回全局 logger
// debug 模式下输出 debug 级别，否则只输出 warn 及以上
func Logger() *zap.SugaredLogger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = newLogger(share.GetDebug(), logFile)
	}
	return logger
}

func newLogger(debug bool, file string) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level),
	}

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err == nil {
			fileCfg := zap.NewProductionEncoderConfig()
			fileCfg.TimeKey = "ts"
			fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			fileCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
			writer := &lumberjack.Logger{
				Filename:   file,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     7,
			}
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(writer), zapcore.DebugLevel))
		}
	}

	return zap.New(zapcore.NewTee(cores...)).Named(share.BUILDNAME).Sugar()
}
