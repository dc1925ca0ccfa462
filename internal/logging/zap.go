package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/teamdraw/types"
)

// ZapLogger implements types.Logger on top of a sugared zap logger.
//
// The sugared logger's plain Debug/Info methods concatenate their arguments,
// so every call is forwarded to the key-value family (Debugw, Infow, ...).
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// Compile-time assertion that ZapLogger implements Logger.
var _ types.Logger = (*ZapLogger)(nil)

// NewZapLogger wraps an existing sugared zap logger.
//
// Parameters:
//   - logger: The underlying logger (zap.NewNop().Sugar() when nil)
//
// Returns:
//   - *ZapLogger: Logger forwarding to the given zap logger
func NewZapLogger(logger *zap.SugaredLogger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &ZapLogger{logger: logger}
}

// NewZap builds the verbose logger of the command line tool: zap's development
// config at debug level, writing to stderr.
//
// Returns:
//   - *ZapLogger: Logger satisfying types.Logger
//   - error: Error if the zap configuration could not be built
//
// Example:
//
//	log, err := logging.NewZap()
//	if err != nil {
//	    return err
//	}
//	defer func() { _ = log.Sync() }()
func NewZap() (*ZapLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	return NewZapLogger(l.Sugar()), nil
}

// NewZapWriter returns a console-encoded logger writing records at or above
// level to w.
func NewZapWriter(w io.Writer, level zapcore.Level) *ZapLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return NewZapLogger(zap.New(core).Sugar())
}

// With returns a logger that adds the given key-value pairs to every record.
func (l *ZapLogger) With(keysAndValues ...any) *ZapLogger {
	return &ZapLogger{logger: l.logger.With(keysAndValues...)}
}

// Sync flushes buffered records.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Infow(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message with optional key-value pairs and exits.
func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Fatalw(msg, keysAndValues...)
}
