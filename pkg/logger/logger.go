package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps logrus with additional functionality
type Logger struct {
	*logrus.Logger
	fields logrus.Fields
}

// Options controls log output and rotation.
type Options struct {
	Level      string
	Format     string // json or text
	File       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// NewLogger creates a new logger instance
func NewLogger(opts Options) *Logger {
	log := logrus.New()

	logLevel, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	if opts.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     false,
		})
	}

	if opts.File != "" {
		logDir := filepath.Dir(opts.File)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			fmt.Printf("Failed to create log directory: %v\n", err)
		} else {
			// lumberjack handles rotation
			fileLogger := &lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    opts.MaxSize,
				MaxBackups: opts.MaxBackups,
				MaxAge:     opts.MaxAge,
				Compress:   opts.Compress,
			}

			// Write to both file and stdout
			multiWriter := io.MultiWriter(os.Stdout, fileLogger)
			log.SetOutput(multiWriter)
		}
	}

	return &Logger{
		Logger: log,
		fields: make(logrus.Fields),
	}
}

// NewTestLogger returns a quiet logger for use in tests.
func NewTestLogger() *Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	log.SetOutput(io.Discard)
	return &Logger{
		Logger: log,
		fields: make(logrus.Fields),
	}
}

// WithField adds a field to the logger context
func (l *Logger) WithField(key string, value interface{}) *Logger {
	newFields := make(logrus.Fields)
	for k, v := range l.fields {
		newFields[k] = v
	}
	newFields[key] = value

	return &Logger{
		Logger: l.Logger,
		fields: newFields,
	}
}

// WithFields adds multiple fields to the logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	newFields := make(logrus.Fields)
	for k, v := range l.fields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &Logger{
		Logger: l.Logger,
		fields: newFields,
	}
}

// WithComponent adds a component field to the logger
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	entry := l.Logger.WithFields(l.fields)
	if len(args) > 0 {
		entry.Debugf(msg, args...)
	} else {
		entry.Debug(msg)
	}
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	entry := l.Logger.WithFields(l.fields)
	if len(args) > 0 {
		entry.Infof(msg, args...)
	} else {
		entry.Info(msg)
	}
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, args ...interface{}) {
	entry := l.Logger.WithFields(l.fields)
	if len(args) > 0 {
		entry.Warningf(msg, args...)
	} else {
		entry.Warning(msg)
	}
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	entry := l.Logger.WithFields(l.fields)
	if len(args) > 0 {
		entry.Errorf(msg, args...)
	} else {
		entry.Error(msg)
	}
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string, args ...interface{}) {
	entry := l.Logger.WithFields(l.fields)
	if len(args) > 0 {
		entry.Fatalf(msg, args...)
	} else {
		entry.Fatal(msg)
	}
}

// Writer returns an io.Writer for the logger
func (l *Logger) Writer() io.Writer {
	return l.Logger.Writer()
}
