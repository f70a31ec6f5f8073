// Package logging configures logrus for the tracker binaries.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupParams selects the log destination, level and format.
type SetupParams struct {
	LogFileName string
	LogToStderr bool
	LogLevel    string
	FormatJSON  bool
}

// Setup configures the standard logrus logger. Logs never go to stdout,
// which is reserved for workout summaries.
func Setup(params SetupParams) io.Closer {
	logger := logrus.StandardLogger()
	closer := Configure(logger, params)
	logger.Debugf("log level set to %s", logger.GetLevel())
	return closer
}

// Configure applies params to logger and returns a closer for the rotated file, if any.
func Configure(logger *logrus.Logger, params SetupParams) io.Closer {
	if params.FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logger.SetOutput(os.Stderr)
		return nopCloser{}
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		LocalTime:  false,
		Compress:   true,
	}

	if params.LogToStderr {
		logger.SetOutput(io.MultiWriter(os.Stderr, lumberJackLogger))
	} else {
		logger.SetOutput(lumberJackLogger)
	}
	return lumberJackLogger
}

// GetLevel parses a level name, falling back to info for unknown values.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info", "":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
