package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options controls how log lines are encoded and filtered.
type Options struct {
	AppName string
	AppEnv  string
	Level   string
	Format  string
}

type Logger struct {
	appEnv  string
	appName string
	l       *zap.Logger
}

// NewZapLogger builds a debug-level JSON logger, writing to stdout when no writers are given.
func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	l, _ := New(Options{AppName: appName, Level: "debug", Format: FormatJSON}, writers...)
	return l
}

func New(opts Options, writers ...io.Writer) (*Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = timeEncoder("2006-01-02T15-04-05.000", time.UTC)
	cfg.TimeKey = "timestamp"

	var encoder zapcore.Encoder
	switch opts.Format {
	case "", FormatJSON:
		encoder = zapcore.NewJSONEncoder(cfg)
	case FormatConsole:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	var multiWriters []zapcore.WriteSyncer
	if len(writers) == 0 {
		multiWriters = append(multiWriters, os.Stdout)
	} else {
		for _, writer := range writers {
			multiWriters = append(multiWriters, zapcore.AddSync(writer))
		}
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.NewMultiWriteSyncer(multiWriters...),
		level,
	)

	return &Logger{
		appEnv:  opts.AppEnv,
		appName: opts.AppName,
		l:       zap.New(core),
	}, nil
}

func (l *Logger) Stop() (err error) {
	if err = l.l.Sync(); err != nil {
		return
	}
	return
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams(2)
	zapFields := []zapcore.Field{}
	if len(fields) > 0 {
		zapFields = mapToZapFields(fields[0])
	}
	l.l.WithOptions(zap.Fields(zapFields...)).Error(
		err.Error(),
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("error", err.Error()),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
		zap.Stack("stack"),
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.log(zapcore.InfoLevel, msg, fields...)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.log(zapcore.WarnLevel, msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.log(zapcore.DebugLevel, msg, fields...)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.log(zapcore.FatalLevel, msg, fields...)
}

func (l *Logger) log(level zapcore.Level, msg string, fields ...map[string]any) {
	ce := l.l.Check(level, msg)
	if ce == nil {
		return
	}

	file, line, funcName := getRuntimeParams(3)
	zapFields := []zapcore.Field{
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
	}
	if len(fields) > 0 {
		zapFields = append(zapFields, mapToZapFields(fields[0])...)
	}
	ce.Write(zapFields...)
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))

	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

// getRuntimeParams reports the caller skip frames above it.
func getRuntimeParams(skip int) (file string, line int, funcName string) {
	var ok bool
	var pc uintptr
	pc, file, line, ok = runtime.Caller(skip)
	if !ok {
		file = "not_defined"
		line = 0
		funcName = "not_defined"
	} else {
		funcName = runtime.FuncForPC(pc).Name()
	}
	return
}

func timeEncoder(layout string, location *time.Location) func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		t = t.In(location)
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}
		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}
		enc.AppendString(t.Format(layout))
	}
}
