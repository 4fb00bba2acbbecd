package logger

import (
	"io"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level LogLevel
	JSON  bool
	// File, when set, receives a copy of every record as JSON and is rotated
	// by size.
	File string
}

type ZerologAdapter struct {
	logger zerolog.Logger
	file   *lumberjack.Logger
}

func NewZerolog(writer io.Writer, level LogLevel) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(zerologLevel(level)).
		With().
		Timestamp().
		Str("run", ulid.Make().String()).
		Logger()

	return &ZerologAdapter{logger: logger}
}

// New builds the application logger: console or JSON on stderr, optionally
// teed into a rotating file.
func New(opts Options) *ZerologAdapter {
	var console io.Writer = os.Stderr
	if !opts.JSON {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	if opts.File == "" {
		return NewZerolog(console, opts.Level)
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		LocalTime:  true,
		Compress:   true,
		MaxSize:    10,
		MaxAge:     14,
		MaxBackups: 3,
	}

	adapter := NewZerolog(zerolog.MultiLevelWriter(console, file), opts.Level)
	adapter.file = file
	return adapter
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	event := z.logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	event := z.logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	event := z.logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	event := z.logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// Shutdown closes the log file, if any.
func (z *ZerologAdapter) Shutdown() {
	if z.file != nil {
		z.file.Close()
	}
}
