package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel     string `koanf:"log_level"`
	LogJSON      bool   `koanf:"log_json"`
	Prompt       string `koanf:"prompt"`
	ConfirmClear bool   `koanf:"confirm_clear"`
	DefaultTree  string `koanf:"default_tree"`
	Preload      []int  `koanf:"preload"`
}

// Logger writes to w, human readable unless LogJSON is set. Load has already
// validated LogLevel.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if !c.LogJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
