package utils

import (
	"os"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger

// InitLogger menyiapkan logger global. Level diambil dari LOG_LEVEL,
// default info.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	Log = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
