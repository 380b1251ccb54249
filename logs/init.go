// Package logs owns the process-wide zap logger used by the command line
// front end. The decoding packages never log; they return errors.
package logs

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

func init() {
	var err error
	option := zap.AddCaller()
	if isTest() {
		Logger, err = zap.NewDevelopment(option)
	} else {
		Logger, err = zap.NewProduction(option)
	}

	if err != nil {
		panic(err)
	}
}

func isTest() bool {
	return strings.HasSuffix(os.Args[0], ".test")
}

// Init rebuilds Logger at the given level ("debug", "info", "warn", ...).
// Output goes to stderr so it never mixes with decoded JSON on stdout.
func Init(level string) error {
	parsedLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, `logs.Init invalid level "%s"`, level)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parsedLevel)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		return errors.Wrap(err, "logs.Init build logger error")
	}

	Logger = logger
	return nil
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}
