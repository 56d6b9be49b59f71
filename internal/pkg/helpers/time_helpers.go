package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string and returns defaultDuration when it is malformed or not positive.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration <= 0 {
		// Global logger: this can run before the configured logger exists.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).
			Msg("Invalid duration string, using default")
		return defaultDuration
	}
	return duration
}
