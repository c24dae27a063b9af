package errors

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogHandler is a Handler that logs errors through zap.
type LogHandler struct {
	// Verbose enables stack traces in panic reports.
	Verbose bool

	logger *zap.Logger
}

// NewLogHandler returns a LogHandler writing console-encoded entries to stderr.
func NewLogHandler(verbose bool) *LogHandler {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zap.DebugLevel,
	)
	return &LogHandler{Verbose: verbose, logger: zap.New(core)}
}

// NewLogHandlerWithLogger returns a LogHandler that writes to logger.
func NewLogHandlerWithLogger(logger *zap.Logger, verbose bool) *LogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogHandler{Verbose: verbose, logger: logger}
}

// HandleError logs a ChipError.
func (h *LogHandler) HandleError(err *ChipError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if ie := err.IndexError(); ie != nil {
		fields = append(fields, zap.Int("index", ie.Index), zap.Int("len", ie.Len))
	}
	h.logger.Error("chips error", fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger.Error("chips panic", fields...)
}
