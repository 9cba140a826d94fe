package applog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level is a logging level accepted by Config.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the log line rendering.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Config configures a Logger.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger is a structured event logger for one run of the engine.
type Logger struct {
	logger zerolog.Logger
}

// New creates a Logger from cfg. A nil Output defaults to os.Stdout; an
// unrecognized Level defaults to info.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	var output io.Writer = cfg.Output
	if cfg.Format == FormatConsole {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	zlog := zerolog.New(output).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		zlog = zlog.Level(zerolog.DebugLevel)
	case LevelWarn:
		zlog = zlog.Level(zerolog.WarnLevel)
	case LevelError:
		zlog = zlog.Level(zerolog.ErrorLevel)
	default:
		zlog = zlog.Level(zerolog.InfoLevel)
	}
	return &Logger{logger: zlog}
}

// WithField returns a child logger carrying one additional field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With().Interface(key, value).Logger()}
}

// WithFields returns a child logger carrying every field in fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.logger.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{logger: ctx.Logger()}
}

func (l *Logger) Debug(msg string) { l.logger.Debug().Msg(msg) }
func (l *Logger) Info(msg string)  { l.logger.Info().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.logger.Warn().Msg(msg) }

// Error logs msg at error level, attaching err under the "error" field
// when non-nil.
func (l *Logger) Error(msg string, err error) {
	event := l.logger.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

// Default is the package-wide logger used by call sites that don't thread
// their own Logger through. SetDefault overrides it; until then it logs at
// info level in console format to stdout.
var Default = New(Config{Level: LevelInfo, Format: FormatConsole})

// SetDefault replaces the package-wide default logger.
func SetDefault(l *Logger) {
	Default = l
}
