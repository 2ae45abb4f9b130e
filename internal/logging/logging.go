package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. format is "json" or "console";
// an unknown level falls back to info.
func Setup(level, format string) zerolog.Logger {
	return setup(os.Stdout, level, format)
}

func setup(out io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	w := out
	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02 15:04:05"}
	}

	logger := zerolog.New(w).With().Timestamp().Logger()
	log.Logger = logger
	if err != nil {
		logger.Warn().Str("invalid_level", level).Msg("invalid LOG_LEVEL, using info")
	}
	return logger
}
