package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	c "nft-ticketing-backend/context"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

const CorrelationId = "correlation_id"

var newlines = regexp.MustCompile(`(\n)|(\r\n)`)

func init() {
	logger = logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
}

// SetLevel parses level and applies it, falling back to info on unknown values.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
}

// SetOutput redirects log output, tests use it to silence or capture logs.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func entry(ctx context.Context) *logrus.Entry {
	return logger.WithField(CorrelationId, c.CorrelationID(ctx))
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Fatalf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Infof(format, args...)
}

func Info(ctx context.Context, msg string) {
	entry(ctx).Info(msg)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Debug(escapeString(format, args...))
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Error(escapeString(format, args...))
}

// WithFields logs msg at info level with structured fields next to the correlation id.
func WithFields(ctx context.Context, fields map[string]interface{}, msg string) {
	entry(ctx).WithFields(logrus.Fields(fields)).Info(msg)
}

// LogExecutionTime is meant to be deferred with the start time of the measured block.
func LogExecutionTime(ctx context.Context, start time.Time, msg string) {
	entry(ctx).WithField("duration_ms", time.Since(start).Milliseconds()).Infof("%s took %s", msg, time.Since(start))
}

func escapeString(format string, args ...interface{}) string {
	return newlines.ReplaceAllString(fmt.Sprintf(format, args...), "\\n ")
}
