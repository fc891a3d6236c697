package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
const (
	// Identity
	FieldExportID  = "export_id"
	FieldComponent = "component"

	// Operations
	FieldPath  = "path"
	FieldState = "state"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
	FieldHints = "hints"

	// Files
	FieldFile = "file"
	FieldSize = "size"
)

type contextKey string

const (
	exportIDKey  contextKey = "logger_export_id"
	componentKey contextKey = "logger_component"
)

// WithExportID adds an export ID to the context for logging
func WithExportID(ctx context.Context, exportID string) context.Context {
	return context.WithValue(ctx, exportIDKey, exportID)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if exportID, ok := ctx.Value(exportIDKey).(string); ok && exportID != "" {
		fields = append(fields, FieldExportID, exportID)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// FromContext returns base enriched with the fields carried by ctx.
// A nil base falls back to the global Logger.
func FromContext(ctx context.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if base == nil {
		base = Logger
	}
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

// ComponentLogger returns a named logger for a specific subsystem.
//
// Example:
//
//	o := &Orchestrator{log: logger.ComponentLogger("export")}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
