package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "civilservices-api"

var base zerolog.Logger

// Config controls the process-wide logger
type Config struct {
	// Level is a zerolog level name; unknown names fall back to info
	Level  string
	Pretty bool
	Output io.Writer
	// StackMarshaler renders error stacks when an event calls Stack()
	StackMarshaler func(err error) interface{}
}

// Configure replaces the global logger and returns the level in effect
func Configure(cfg Config) zerolog.Level {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level := ParseLevel(cfg.Level)
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)
	if cfg.StackMarshaler != nil {
		zerolog.ErrorStackMarshaler = cfg.StackMarshaler
	}

	base = zerolog.New(out).With().Timestamp().Str("service", serviceName).Logger()
	log.Logger = base
	return level
}

// ParseLevel maps a configured level name to a zerolog level
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func Get() zerolog.Logger { return base }

func Debug() *zerolog.Event { return base.Debug() }

func Info() *zerolog.Event { return base.Info() }

func Warn() *zerolog.Event { return base.Warn() }

// Error attaches the stack of the logged error, if it carries one
func Error() *zerolog.Event { return base.Error().Stack() }

func init() {
	Configure(Config{Level: "info", Pretty: true})
}
