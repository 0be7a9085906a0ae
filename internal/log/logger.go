package log

import (
	"io"
	"os"

	"applauncher/internal/errors"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

var (
	isDebug = false
	logger  = NewLogger()
)

// Logger writes console diagnostics. Scan and parse failures end up here and
// never in the UI.
type Logger struct {
	l *logrus.Logger
}

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput redirects log output.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.l.SetOutput(w)
	}
}

// WithJSON switches to JSON-formatted output.
func WithJSON() Option {
	return func(l *Logger) {
		l.l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// NewLogger creates a logger writing text to stderr.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{l: logrus.New()}
	l.l.SetOutput(os.Stderr)
	l.l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	l.l.SetLevel(levelFor(isDebug))
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func levelFor(debug bool) logrus.Level {
	if debug {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Default returns the package logger.
func Default() *Logger {
	return logger
}

// SetDebug enables or disables debug output on the package logger.
func SetDebug(debug bool) {
	isDebug = debug
	logger.l.SetLevel(levelFor(debug))
}

// SetOutput redirects the package logger.
func SetOutput(w io.Writer) {
	logger.l.SetOutput(w)
}

// With returns an entry carrying the given fields.
func (l *Logger) With(fields ...Field) *logrus.Entry {
	return l.l.WithFields(toLogrus(fields))
}

func (l *Logger) Info(msg string)                           { l.l.Info(msg) }
func (l *Logger) Infof(format string, args ...interface{})  { l.l.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.l.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.l.Errorf(format, args...) }
func (l *Logger) Debug(msg string)                          { l.l.Debug(msg) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.l.Debugf(format, args...) }

func toLogrus(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

// Info logs a formatted message
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// WithFields returns an entry on the package logger carrying the given fields.
func WithFields(fields ...Field) *logrus.Entry {
	return logger.With(fields...)
}

// LogWithError is WithError on the package logger.
func LogWithError(err error) *logrus.Entry {
	return logger.WithError(err)
}

// WithError returns an entry describing err: its message, its kind and
// whichever of path, field, param or command the error carries.
func (l *Logger) WithError(err error) *logrus.Entry {
	if err == nil {
		return l.l.WithField("error", "<nil>")
	}
	fields := logrus.Fields{
		"error":      err.Error(),
		"error_kind": errors.KindOf(err).String(),
	}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields["path"] = fileErr.Path()
	}
	var descErr *errors.DescriptorError
	if errors.As(err, &descErr) {
		if descErr.Path() != "" {
			fields["path"] = descErr.Path()
		}
		fields["field"] = descErr.Field()
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields["param"] = configErr.Param()
	}
	var launchErr *errors.LaunchError
	if errors.As(err, &launchErr) {
		fields["command"] = launchErr.Command()
	}
	return l.l.WithFields(fields)
}
