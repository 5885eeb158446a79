package logger

import (
	"fmt"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotationConfig configures the optional file sink New uses when
// Config.FilePath is set. Generalized from the teacher's
// FileLoggerConfig/UnraidOptimizedConfig (this file's former contents),
// genericized away from Unraid-specific filenames and disk-space
// commentary — cubestat-go's --log-file flag names the path directly.
type RotationConfig struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultRotationConfig mirrors the teacher's conservative defaults: a
// small size cap and a handful of backups, not unbounded growth.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{MaxSizeMB: 5, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
}

func (c RotationConfig) orDefault() RotationConfig {
	if c.MaxSizeMB <= 0 {
		return DefaultRotationConfig()
	}
	return c
}

// Validate mirrors the teacher's ValidateLogConfiguration size check.
func (c RotationConfig) Validate() error {
	if c.MaxSizeMB <= 0 {
		return fmt.Errorf("log rotation max size must be greater than 0, got %d", c.MaxSizeMB)
	}
	return nil
}

func (c RotationConfig) sink(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Compress:   c.Compress,
	}
}
