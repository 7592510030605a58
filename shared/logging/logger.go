package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"regexp"
	"runtime"
	"strings"
)

const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

type (
	//Logger represents a leveled structured logger
	Logger interface {
		IsDebugEnabled() bool
		IsInfoEnabled() bool
		IsWarnEnabled() bool
		IsErrorEnabled() bool
		Debug(msg string, args ...any)
		Info(msg string, args ...any)
		Warn(msg string, args ...any)
		Error(msg string, args ...any)
		Debugc(ctx context.Context, msg string, args ...any)
		Infoc(ctx context.Context, msg string, args ...any)
		Warnc(ctx context.Context, msg string, args ...any)
		Errorc(ctx context.Context, msg string, args ...any)
	}

	slogger struct {
		logger *slog.Logger
		level  slog.Level
	}

	contextKey string
)

const (
	programKey contextKey = "program"
	pageKey    contextKey = "page"
)

var urlCredentials = regexp.MustCompile(`(?i)(\w+://)[^/@\s]+:[^/@\s]+@`)

// New creates a structured logger using the JSON Handler writing to dest, stdout when nil.
// Creating this logger sets it as the default slog logger.
func New(level string, dest io.Writer) Logger {
	if dest == nil {
		dest = os.Stdout
	}
	logLevel := ParseLevel(level)
	handler := slog.NewJSONHandler(dest, &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	})
	sl := slog.New(handler)
	slog.SetDefault(sl)
	return &slogger{logger: sl, level: logLevel}
}

//ParseLevel returns slog level for DEBUG, WARN, ERROR, anything else is INFO
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	}
	return slog.LevelInfo
}

//WithProgram returns a context carrying the rendered program name
func WithProgram(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, programKey, name)
}

//WithPage returns a context carrying the rendered page path
func WithPage(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pageKey, path)
}

//RedactURL removes credentials embedded in a storage URL
func RedactURL(URL string) string {
	return urlCredentials.ReplaceAllString(URL, "${1}[REDACTED]@")
}

func (s *slogger) IsDebugEnabled() bool {
	return s.level.Level() <= slog.LevelDebug
}

func (s *slogger) IsInfoEnabled() bool {
	return s.level.Level() <= slog.LevelInfo
}

func (s *slogger) IsWarnEnabled() bool {
	return s.level.Level() <= slog.LevelWarn
}

func (s *slogger) IsErrorEnabled() bool {
	return s.level.Level() <= slog.LevelError
}

// getCallerInfo uses runtime to get the caller's program counter
// and extract info from the stack frame to get the function name, etc.
func (s *slogger) getCallerInfo() []any {
	callers := make([]uintptr, 1)
	count := runtime.Callers(4, callers[:])
	if count == 0 {
		return nil
	}
	frame, _ := runtime.CallersFrames(callers).Next()
	return []any{"function", frame.Function, "file", frame.File, "line", frame.Line}
}

// getContextValues retrieves "known" logging values from the Context.
func (s *slogger) getContextValues(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var values []any
	for _, key := range []contextKey{programKey, pageKey} {
		if value := ctx.Value(key); value != nil {
			values = append(values, string(key), value)
		}
	}
	return values
}

func (s *slogger) attrs(ctx context.Context, args []any) []any {
	result := s.getCallerInfo()
	if ctx != nil {
		result = append(result, s.getContextValues(ctx)...)
	}
	return append(result, args...)
}

// Info wraps a call to slog.Info, inserting details for the calling function.
func (s *slogger) Info(msg string, args ...any) {
	if !s.IsInfoEnabled() {
		return
	}
	s.logger.Info(msg, s.attrs(nil, args)...)
}

// Debug wraps a call to slog.Debug, inserting details for the calling function.
func (s *slogger) Debug(msg string, args ...any) {
	if !s.IsDebugEnabled() {
		return
	}
	s.logger.Debug(msg, s.attrs(nil, args)...)
}

// Warn wraps a call to slog.Warn, inserting details for the calling function.
func (s *slogger) Warn(msg string, args ...any) {
	if !s.IsWarnEnabled() {
		return
	}
	s.logger.Warn(msg, s.attrs(nil, args)...)
}

// Error wraps a call to slog.Error, inserting details for the calling function.
func (s *slogger) Error(msg string, args ...any) {
	if !s.IsErrorEnabled() {
		return
	}
	s.logger.Error(msg, s.attrs(nil, args)...)
}

// Infoc wraps a call to slog.Info, inserting details for the calling function,
// and retrieving known values from the context object.
func (s *slogger) Infoc(ctx context.Context, msg string, args ...any) {
	if !s.IsInfoEnabled() {
		return
	}
	s.logger.Info(msg, s.attrs(ctx, args)...)
}

func (s *slogger) Debugc(ctx context.Context, msg string, args ...any) {
	if !s.IsDebugEnabled() {
		return
	}
	s.logger.Debug(msg, s.attrs(ctx, args)...)
}

func (s *slogger) Warnc(ctx context.Context, msg string, args ...any) {
	if !s.IsWarnEnabled() {
		return
	}
	s.logger.Warn(msg, s.attrs(ctx, args)...)
}

func (s *slogger) Errorc(ctx context.Context, msg string, args ...any) {
	if !s.IsErrorEnabled() {
		return
	}
	s.logger.Error(msg, s.attrs(ctx, args)...)
}
