package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultPort is the port the target listens on when -port is not given.
const DefaultPort = 3000

// LogLevelFlag implements flag.Value for a slog level
type LogLevelFlag slog.Level

func (f *LogLevelFlag) String() string {
	if f == nil {
		return ""
	}
	return strings.ToLower(slog.Level(*f).String())
}

func (f *LogLevelFlag) Set(value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		*f = LogLevelFlag(slog.LevelDebug)
	case "info":
		*f = LogLevelFlag(slog.LevelInfo)
	case "warn", "warning":
		*f = LogLevelFlag(slog.LevelWarn)
	case "error":
		*f = LogLevelFlag(slog.LevelError)
	default:
		return fmt.Errorf("invalid log level %q: want debug, info, warn or error", value)
	}
	return nil
}

// Level returns the flag value as a slog.Level
func (f *LogLevelFlag) Level() slog.Level {
	return slog.Level(*f)
}

// ValidatePort reports whether p can be bound. Zero picks an ephemeral port.
func ValidatePort(p int) error {
	if p < 0 || p > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", p)
	}
	return nil
}
