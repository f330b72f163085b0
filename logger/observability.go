package logger

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// ObservabilityLogger provides structured JSON logging using logrus for log
// ingestion. Console lines stay human-readable; everything operators query
// lands here.
type ObservabilityLogger struct {
	logger *logrus.Logger
	file   *os.File
}

// Component constants for consistent labeling
const (
	ComponentSchemaGuard = "schema_guard"
	ComponentRenderer    = "safe_renderer"
	ComponentStyleMapper = "style_mapper"
	ComponentServer      = "render_server"
	ComponentConfig      = "configuration"
)

// Category constants for log classification
const (
	CategoryRequest    = "request"
	CategoryRepair     = "repair"
	CategoryFallback   = "fallback"
	CategoryRender     = "render"
	CategoryValidation = "validation"
	CategorySuccess    = "success"
	CategoryError      = "error"
	CategoryDebug      = "debug"
)

// NewObservabilityLogger creates a new structured logger writing JSON lines
// for ingestion.
func NewObservabilityLogger(logDir string) (*ObservabilityLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(logDir, "answer-guard.jsonl")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	logger.SetLevel(logrus.InfoLevel)

	// Add service field to all logs
	logger = logger.WithField("service", "answer-guard").Logger

	return &ObservabilityLogger{
		logger: logger,
		file:   file,
	}, nil
}

// Close closes the log file
func (o *ObservabilityLogger) Close() error {
	if o.file != nil {
		return o.file.Close()
	}
	return nil
}

// createEntry creates a logrus entry with standard fields
func (o *ObservabilityLogger) createEntry(component, category, requestID string, fields map[string]interface{}) *logrus.Entry {
	entry := o.logger.WithFields(logrus.Fields{
		"component": component,
		"category":  category,
	})

	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	if fields != nil {
		entry = entry.WithFields(fields)
	}

	return entry
}

// Debug logs a debug message
func (o *ObservabilityLogger) Debug(component, category, requestID, message string, fields map[string]interface{}) {
	o.createEntry(component, category, requestID, fields).Debug(message)
}

// Info logs an info message
func (o *ObservabilityLogger) Info(component, category, requestID, message string, fields map[string]interface{}) {
	o.createEntry(component, category, requestID, fields).Info(message)
}

// Warn logs a warning message
func (o *ObservabilityLogger) Warn(component, category, requestID, message string, fields map[string]interface{}) {
	o.createEntry(component, category, requestID, fields).Warn(message)
}

// Error logs an error message
func (o *ObservabilityLogger) Error(component, category, requestID, message string, fields map[string]interface{}) {
	o.createEntry(component, category, requestID, fields).Error(message)
}

// RepairEvent logs an ordinary repair: a recognizable variant that needed
// coercion into the canonical shape.
func (o *ObservabilityLogger) RepairEvent(requestID, variant, message string, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["variant"] = variant
	o.Info(ComponentSchemaGuard, CategoryRepair, requestID, message, fields)
}

// FallbackEvent logs the unknown-variant placeholder path. Logged at WARN
// under its own category so operators can separate drift we already handle
// from drift we do not.
func (o *ObservabilityLogger) FallbackEvent(requestID, message string, fields map[string]interface{}) {
	o.Warn(ComponentSchemaGuard, CategoryFallback, requestID, message, fields)
}

// RenderEvent logs completion of a render tree build.
func (o *ObservabilityLogger) RenderEvent(requestID, message string, fields map[string]interface{}) {
	o.Info(ComponentRenderer, CategoryRender, requestID, message, fields)
}
