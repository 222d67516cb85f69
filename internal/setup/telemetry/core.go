package telemetry

import (
	"context"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
)

// Core implements zapcore.Core to forward error logs to OpenTelemetry.
// Spans go to the global tracer provider, which discards them unless one is installed.
type Core struct {
	zapcore.LevelEnabler
	tracer trace.Tracer
}

// NewCore creates a new core that forwards logs to OpenTelemetry.
func NewCore(enab zapcore.LevelEnabler) zapcore.Core {
	return &Core{
		LevelEnabler: enab,
		tracer:       otel.Tracer("cipherkit/logs"),
	}
}

func (c *Core) With(_ []zapcore.Field) zapcore.Core {
	return c
}

func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	// Only forward Error and higher severity
	if ent.Level < zapcore.ErrorLevel {
		return nil
	}

	_, span := c.tracer.Start(context.Background(), "error."+getErrorCategory(ent))
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("error.message", ent.Message),
		attribute.String("error.level", ent.Level.String()),
		attribute.String("error.caller", ent.Caller.String()),
		attribute.String("logger.name", ent.LoggerName),
	}

	for _, field := range fields {
		attrs = append(attrs, attribute.String(field.Key, fieldValue(field)))
	}

	span.SetAttributes(attrs...)
	return nil
}

func (c *Core) Sync() error {
	return nil
}

// fieldValue renders a field as a span attribute value.
func fieldValue(field zapcore.Field) string {
	switch field.Type {
	case zapcore.ErrorType:
		if err, ok := field.Interface.(error); ok {
			return err.Error()
		}
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		return strconv.FormatInt(field.Integer, 10)
	}

	return field.String
}

// getErrorCategory determines the error category based on the log entry.
// Caller functions look like "module/internal/cracker.(*Cracker).Crack".
func getErrorCategory(ent zapcore.Entry) string {
	switch {
	case strings.Contains(ent.Caller.Function, "/cracker."):
		return "cracker"
	case strings.Contains(ent.Caller.Function, "/detector."):
		return "detector"
	case strings.Contains(ent.Caller.Function, "/wordlist."):
		return "wordlist"
	case strings.Contains(ent.Caller.Function, "/cipher."):
		return "cipher"
	case strings.Contains(ent.Caller.Function, "/setup"):
		return "setup"
	default:
		return "application"
	}
}
