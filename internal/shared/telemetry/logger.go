package telemetry

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stdout)
)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "msg",
		},
	})
	return l
}

// SetOutput redirects log lines, mainly for tests.
func SetOutput(out io.Writer) {
	mu.Lock()
	logger = newLogger(out)
	mu.Unlock()
}

// SetLevel parses a logrus level name ("debug", "info", ...). Unknown names are ignored.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	mu.Lock()
	logger.SetLevel(parsed)
	mu.Unlock()
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	entry(fields).Info(msg)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	entry(fields).Warn(msg)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	entry(fields).Error(msg)
}

func entry(fields map[string]any) *logrus.Entry {
	mu.RLock()
	l := logger
	mu.RUnlock()
	return l.WithFields(logrus.Fields(fields))
}
