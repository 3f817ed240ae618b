package log

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
)

const defaultLogFilePermissions fs.FileMode = 0644

// Config selects where and how log entries are written.
type Config struct {
	Level        logrus.Level
	Structured   bool
	FileLocation string
	Console      io.Writer // usually os.Stderr; nil disables console output
}

// Setup builds a logrus logger from cfg and installs it as the package logger.
// The returned closer releases the log file, if any.
func Setup(cfg Config) (io.Closer, error) {
	l := logrus.New()

	var closer io.Closer = nopCloser{}
	var outputs []io.Writer
	if cfg.Console != nil {
		outputs = append(outputs, cfg.Console)
	}
	if cfg.FileLocation != "" {
		f, err := os.OpenFile(cfg.FileLocation, os.O_WRONLY|os.O_CREATE|os.O_APPEND, defaultLogFilePermissions)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		outputs = append(outputs, f)
		closer = f
	}

	switch len(outputs) {
	case 0:
		l.SetOutput(io.Discard)
	case 1:
		l.SetOutput(outputs[0])
	default:
		l.SetOutput(io.MultiWriter(outputs...))
	}
	l.SetLevel(cfg.Level)

	if cfg.Structured {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	}

	Set(l)
	return closer, nil
}

// LevelFromVerbosity maps the -v count onto a level, starting from base.
func LevelFromVerbosity(verbosity int, base logrus.Level) logrus.Level {
	level := base + logrus.Level(verbosity)
	if level > logrus.TraceLevel {
		return logrus.TraceLevel
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
