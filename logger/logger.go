package logger

import (
	"answer-guard/internal"
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Level represents the severity level of a log message
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of a log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Emoji returns the emoji prefix for a log level
func (l Level) Emoji() string {
	switch l {
	case DEBUG:
		return "🔍"
	case INFO:
		return "ℹ️"
	case WARN:
		return "⚠️"
	case ERROR:
		return "❌"
	default:
		return "📝"
	}
}

// ParseLevel converts a string to a Level with fallback to INFO
func ParseLevel(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger defines the interface for structured logging
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	WithField(key, value string) Logger
	WithVariant(variant string) Logger
	WithComponent(component string) Logger
}

// LoggerConfig holds configuration for the logger
type LoggerConfig interface {
	ShouldLogForVariant(variant string) bool
	GetMinLogLevel() Level
	ShouldMaskSessionIDs() bool
}

// sessionIDPattern matches the session identifiers that may appear in
// payload metadata and must not end up verbatim in console logs.
var sessionIDPattern = regexp.MustCompile(`session_[A-Za-z0-9-]+`)

// ContextLogger implements the Logger interface with context-aware filtering
type ContextLogger struct {
	ctx       context.Context
	config    LoggerConfig
	fields    map[string]string
	variant   string
	component string
}

// New creates a new ContextLogger with the given config
func New(ctx context.Context, config LoggerConfig) Logger {
	return &ContextLogger{
		ctx:    ctx,
		config: config,
		fields: make(map[string]string),
	}
}

// WithField adds a field to the logger context
func (l *ContextLogger) WithField(key, value string) Logger {
	newFields := make(map[string]string)
	for k, v := range l.fields {
		newFields[k] = v
	}
	newFields[key] = value

	return &ContextLogger{
		ctx:       l.ctx,
		config:    l.config,
		fields:    newFields,
		variant:   l.variant,
		component: l.component,
	}
}

// WithVariant sets the payload variant for filtering decisions
func (l *ContextLogger) WithVariant(variant string) Logger {
	return &ContextLogger{
		ctx:       l.ctx,
		config:    l.config,
		fields:    l.fields,
		variant:   variant,
		component: l.component,
	}
}

// WithComponent sets the component for the logger
func (l *ContextLogger) WithComponent(component string) Logger {
	return &ContextLogger{
		ctx:       l.ctx,
		config:    l.config,
		fields:    l.fields,
		variant:   l.variant,
		component: component,
	}
}

// shouldLog determines if a message should be logged based on level and variant filtering
func (l *ContextLogger) shouldLog(level Level) bool {
	if level < l.config.GetMinLogLevel() {
		return false
	}

	if l.variant != "" && !l.config.ShouldLogForVariant(l.variant) {
		return false
	}

	return true
}

// formatMessage creates a structured log message
func (l *ContextLogger) formatMessage(level Level, format string, args ...interface{}) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%s [%s]", level.Emoji(), level.String()))

	if requestID := internal.GetRequestID(l.ctx); requestID != "" {
		parts = append(parts, fmt.Sprintf("[%s]", requestID))
	}

	if l.component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", l.component))
	}

	message := fmt.Sprintf(format, args...)

	if l.config.ShouldMaskSessionIDs() {
		message = sessionIDPattern.ReplaceAllString(message, "session_***")
	}

	parts = append(parts, message)

	if len(l.fields) > 0 {
		var fieldParts []string
		for k, v := range l.fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("fields={%s}", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// Debug logs a debug level message
func (l *ContextLogger) Debug(format string, args ...interface{}) {
	if l.shouldLog(DEBUG) {
		log.Println(l.formatMessage(DEBUG, format, args...))
	}
}

// Info logs an info level message
func (l *ContextLogger) Info(format string, args ...interface{}) {
	if l.shouldLog(INFO) {
		log.Println(l.formatMessage(INFO, format, args...))
	}
}

// Warn logs a warning level message
func (l *ContextLogger) Warn(format string, args ...interface{}) {
	if l.shouldLog(WARN) {
		log.Println(l.formatMessage(WARN, format, args...))
	}
}

// Error logs an error level message
func (l *ContextLogger) Error(format string, args ...interface{}) {
	if l.shouldLog(ERROR) {
		log.Println(l.formatMessage(ERROR, format, args...))
	}
}
