package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the main logger instance.
type Logger struct {
	mu      sync.Mutex
	sugar   *zap.SugaredLogger
	level   zap.AtomicLevel
	console zapcore.WriteSyncer
	file    *lumberjack.Logger
	logPath string
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// ErrAlreadyInitialized is returned by InitWithFile when the default
// logger was already set up. The file sink can only be installed by the
// first initialization.
var ErrAlreadyInitialized = errors.New("logger already initialized")

// Init initializes the default logger with the specified level, writing
// to stdout. Initialization happens once per process; later Init calls
// are no-ops.
func Init(levelStr string) {
	once.Do(func() {
		defaultLogger = newLogger(parseLevel(levelStr), zapcore.Lock(os.Stdout))
	})
}

// InitWithFile initializes the default logger with the specified level,
// writing to stdout and to a rotated log file inside dir. Like Init it
// is effective once per process: when the logger is already set up it
// returns ErrAlreadyInitialized and installs no file sink. When the log
// directory cannot be created it returns the error and falls back to
// console logging.
func InitWithFile(levelStr, dir string) error {
	err := ErrAlreadyInitialized
	once.Do(func() {
		var l *Logger
		l, err = newFileLogger(parseLevel(levelStr), dir)
		if err != nil {
			// Console logging stays available when the file sink fails.
			defaultLogger = newLogger(parseLevel(levelStr), zapcore.Lock(os.Stdout))
			return
		}
		defaultLogger = l
	})
	return err
}

// SetLevel sets the logging level for the default logger.
func SetLevel(levelStr string) {
	if defaultLogger == nil {
		Init(levelStr)
		return
	}
	defaultLogger.level.SetLevel(parseLevel(levelStr))
}

// SetOutput sets the console output destination for the default logger.
// The log file, if any, is unaffected.
func SetOutput(w io.Writer) {
	if defaultLogger == nil {
		Init("info")
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.console = zapcore.AddSync(w)
	defaultLogger.rebuild()
}

// GetLogFilePath returns the path of the current log file, or "" when
// logging to console only.
func GetLogFilePath() string {
	if defaultLogger == nil {
		return ""
	}
	return defaultLogger.logPath
}

// Close flushes buffered entries and closes the log file, if any.
func Close() error {
	if defaultLogger == nil {
		return nil
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	_ = defaultLogger.sugar.Sync()
	if defaultLogger.file != nil {
		return defaultLogger.file.Close()
	}
	return nil
}

func newLogger(level zapcore.Level, console zapcore.WriteSyncer) *Logger {
	l := &Logger{
		level:   zap.NewAtomicLevelAt(level),
		console: console,
	}
	l.rebuild()
	return l
}

func newFileLogger(level zapcore.Level, dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	filename := time.Now().Format("2006-01-02_15-04-05_MST") + ".log"
	l := &Logger{
		level:   zap.NewAtomicLevelAt(level),
		console: zapcore.Lock(os.Stdout),
		file: &lumberjack.Logger{
			Filename:   filepath.Join(dir, filename),
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
		},
	}
	l.logPath = l.file.Filename
	l.rebuild()
	return l, nil
}

// rebuild recreates the zap cores from the current sinks. Callers must
// hold mu unless the logger is still being constructed.
func (l *Logger) rebuild() {
	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), l.console, l.level),
	}

	if l.file != nil {
		// No ANSI colors in the log file.
		fileCfg := zap.NewDevelopmentEncoderConfig()
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), zapcore.AddSync(l.file), l.level))
	}

	l.sugar = zap.New(zapcore.NewTee(cores...)).Sugar()
}

func (l *Logger) s() *zap.SugaredLogger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sugar
}

// sugar returns the sugared logger of the default logger, initializing
// it on first use. It never returns nil.
func sugar() *zap.SugaredLogger {
	if defaultLogger == nil {
		Init("info")
	}
	if l := defaultLogger; l != nil {
		return l.s()
	}
	return zap.NewNop().Sugar()
}

// parseLevel converts a string to a zap level.
func parseLevel(levelStr string) zapcore.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	sugar().Debugf(format, args...)
}

// Debugf is an alias for Debug.
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// Info logs an info message.
func Info(format string, args ...interface{}) {
	sugar().Infof(format, args...)
}

// Infof is an alias for Info.
func Infof(format string, args ...interface{}) {
	Info(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	sugar().Warnf(format, args...)
}

// Warnf is an alias for Warn.
func Warnf(format string, args ...interface{}) {
	Warn(format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	sugar().Errorf(format, args...)
}

// Errorf is an alias for Error.
func Errorf(format string, args ...interface{}) {
	Error(format, args...)
}

// Fatal logs a fatal message and exits the program.
func Fatal(format string, args ...interface{}) {
	sugar().Fatalf(format, args...)
}

// Fatalf is an alias for Fatal.
func Fatalf(format string, args ...interface{}) {
	Fatal(format, args...)
}
