package logger

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the structured logging interface exposed to library consumers.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// Field is a key/value pair attached to a log record.
type Field struct {
	Key   string
	Value any
}

// String returns a string-valued field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int returns an int-valued field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 returns a uint64-valued field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 returns a float64-valued field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool returns a bool-valued field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err returns a field under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// ─────────────────────────────────────────────────────────────────────────────
// Zerolog adapter
// ─────────────────────────────────────────────────────────────────────────────

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps l.
func NewZerologAdapter(l zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: l}
}

// NewLogger returns an adapter writing JSON records to w, tagged with
// component.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	return NewZerologAdapter(zerolog.New(w).With().Timestamp().Str("component", component).Logger())
}

// Default returns an adapter over the logger installed by InitWithConfig.
// Before initialization it discards everything.
func Default() *ZerologAdapter {
	return NewZerologAdapter(global.logger())
}

// Debug logs msg at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Info logs msg at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

// Warn logs msg at warn level.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(a.logger.Warn(), fields).Msg(msg)
}

// Error logs msg at error level with err under the "error" key.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.logger.Info().Msgf(format, args...)
}

// Println logs its operands, separated by spaces, at info level.
func (a *ZerologAdapter) Println(args ...any) {
	a.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// ─────────────────────────────────────────────────────────────────────────────
// Standard library adapter
// ─────────────────────────────────────────────────────────────────────────────

// StdLoggerAdapter implements Logger on top of a *log.Logger, for callers
// that already route output through the standard library.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps l. Levels are rendered as a [LEVEL] prefix and
// fields as key=value pairs.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: l}
}

// Debug logs msg with a [DEBUG] prefix.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) { a.emit("DEBUG", msg, fields) }

// Info logs msg with an [INFO] prefix.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) { a.emit("INFO", msg, fields) }

// Warn logs msg with a [WARN] prefix.
func (a *StdLoggerAdapter) Warn(msg string, fields ...Field) { a.emit("WARN", msg, fields) }

// Error logs msg with an [ERROR] prefix and err as the first field.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	a.emit("ERROR", msg, append([]Field{Err(err)}, fields...))
}

// Printf forwards to the wrapped logger's Printf.
func (a *StdLoggerAdapter) Printf(format string, args ...any) { a.logger.Printf(format, args...) }

// Println forwards to the wrapped logger's Println.
func (a *StdLoggerAdapter) Println(args ...any) { a.logger.Println(args...) }

func (a *StdLoggerAdapter) emit(level, msg string, fields []Field) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", level, msg)
	for _, f := range fields {
		fmt.Fprintf(&sb, " %s=%v", f.Key, f.Value)
	}
	a.logger.Println(sb.String())
}
