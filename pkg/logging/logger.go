package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	BrightRed     = "\033[91m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
	BrightWhite   = "\033[97m"
)

// ColoredLogger wraps zap.Logger with colored output
type ColoredLogger struct {
	*zap.Logger
	enableColors bool
	file         io.Closer // set when logging to OutputFile
}

// Component represents different parts of the system for color coding
type Component string

const (
	ComponentStation   Component = "STATION"
	ComponentSatellite Component = "SATELLITE"
	ComponentConfig    Component = "CONFIG"
	ComponentCLI       Component = "CLI"
	ComponentGeneral   Component = "GENERAL"
)

func getComponentColor(component Component) string {
	switch component {
	case ComponentStation:
		return BrightBlue
	case ComponentSatellite:
		return BrightCyan
	case ComponentConfig:
		return BrightMagenta
	case ComponentCLI:
		return Green
	case ComponentGeneral:
		return Yellow
	default:
		return White
	}
}

func getLevelColor(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return Gray
	case zapcore.InfoLevel:
		return BrightWhite
	case zapcore.WarnLevel:
		return BrightYellow
	case zapcore.ErrorLevel:
		return BrightRed
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return Red
	default:
		return White
	}
}

// coloredConsoleEncoder creates a custom encoder with colors
func coloredConsoleEncoder(enableColors bool) zapcore.Encoder {
	config := zap.NewDevelopmentEncoderConfig()

	// HH:MM:SS only
	config.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		timeStr := t.Format("15:04:05")
		if enableColors {
			enc.AppendString(fmt.Sprintf("%s%s%s", Dim, timeStr, Reset))
		} else {
			enc.AppendString(timeStr)
		}
	}

	// Single letter level: D, I, W, E
	config.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		levelMap := map[zapcore.Level]string{
			zapcore.DebugLevel: "D",
			zapcore.InfoLevel:  "I",
			zapcore.WarnLevel:  "W",
			zapcore.ErrorLevel: "E",
		}
		levelStr := levelMap[level]
		if levelStr == "" {
			levelStr = "?"
		}
		if enableColors {
			color := getLevelColor(level)
			enc.AppendString(fmt.Sprintf("%s%s%s%s", color, Bold, levelStr, Reset))
		} else {
			enc.AppendString(levelStr)
		}
	}

	config.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		file := caller.File
		if idx := strings.LastIndex(file, "/"); idx >= 0 {
			file = file[idx+1:]
		}
		file = strings.TrimSuffix(file, ".go")
		if enableColors {
			enc.AppendString(fmt.Sprintf("%s%s%s", Dim, file, Reset))
		} else {
			enc.AppendString(file)
		}
	}

	return zapcore.NewConsoleEncoder(config)
}

// Options controls how NewLogger builds a logger.
type Options struct {
	Level      string // debug, info, warn, error
	Format     string // console, json
	OutputFile string    // takes precedence over Output
	Output     io.Writer // defaults to os.Stderr
	Color      bool
}

// ParseLevel maps a level name onto a zapcore level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}

// NewLogger creates a logger from Options. Console output is colored when
// opts.Color is set and the output is not a file.
func NewLogger(opts Options) (*ColoredLogger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stderr
	if opts.Output != nil {
		out = opts.Output
	}
	sink := zapcore.AddSync(out)
	enableColors := opts.Color
	var file *os.File
	if opts.OutputFile != "" {
		file, err = os.OpenFile(opts.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", opts.OutputFile, err)
		}
		sink = zapcore.AddSync(file)
		enableColors = false
	}

	var encoder zapcore.Encoder
	switch opts.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		enableColors = false
	case "", "console":
		encoder = coloredConsoleEncoder(enableColors)
	default:
		if file != nil {
			_ = file.Close()
		}
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	core := zapcore.NewCore(encoder, sink, level)
	logger := &ColoredLogger{
		Logger:       zap.New(core, zap.AddCaller()),
		enableColors: enableColors,
	}
	if file != nil {
		logger.file = file
	}
	return logger, nil
}

// Close flushes buffered entries and closes the log file, if any. Sync
// errors are only reported for file output; syncing a terminal fails on
// some platforms.
func (l *ColoredLogger) Close() error {
	if l.file == nil {
		_ = l.Sync()
		return nil
	}
	err := multierr.Append(l.Sync(), l.file.Close())
	l.file = nil
	return err
}

// Named returns a plain *zap.Logger tagged with the component, for handing
// to packages that take a *zap.Logger.
func (l *ColoredLogger) Named(component Component) *zap.Logger {
	return l.Logger.With(zap.String("component", string(component)))
}

func (l *ColoredLogger) tag(component Component, msg string) string {
	if l.enableColors {
		color := getComponentColor(component)
		return fmt.Sprintf("%s[%s]%s %s", color, component, Reset, msg)
	}
	return fmt.Sprintf("[%s] %s", component, msg)
}

// Component-specific logging methods
func (l *ColoredLogger) ComponentInfo(component Component, msg string, fields ...zap.Field) {
	l.Info(l.tag(component, msg), fields...)
}

func (l *ColoredLogger) ComponentWarn(component Component, msg string, fields ...zap.Field) {
	l.Warn(l.tag(component, msg), fields...)
}

func (l *ColoredLogger) ComponentError(component Component, msg string, fields ...zap.Field) {
	l.Error(l.tag(component, msg), fields...)
}

func (l *ColoredLogger) ComponentDebug(component Component, msg string, fields ...zap.Field) {
	l.Debug(l.tag(component, msg), fields...)
}
