// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package conf

// LoggerConfig controls educhaind's log output and rotation, the settings
// fed straight through to lumberjack.Logger by log.Init.
//
// Rotation policy:
//   - once a file exceeds MaxSize MB it is rotated to a timestamped sibling
//   - backups beyond MaxBackups, or older than MaxAge days, are pruned
//   - Compress gzips rotated backups to cut their footprint
//
// Suggested presets:
//   - production:     MaxSize=100, MaxBackups=10, MaxAge=30, Compress=true
//   - development:     MaxSize=10,  MaxBackups=3,  MaxAge=7,  Compress=false
//   - disk-constrained: MaxSize=50, MaxBackups=5, MaxAge=7, Compress=true, TotalSizeCap=500
type LoggerConfig struct {
	// LogFile names the log file; empty means console-only. A relative
	// path is resolved under DataDir/log/.
	LogFile string `json:"name" yaml:"name"`

	// Level is one of trace, debug, info, warn, error, fatal.
	Level string `json:"level" yaml:"level"`

	// MaxSize is the per-file rotation threshold in megabytes. Default 100.
	MaxSize int `json:"max_size" yaml:"max_size"`

	// MaxBackups caps the number of rotated files kept; 0 means unbounded
	// (still subject to MaxAge). Default 10.
	MaxBackups int `json:"max_count" yaml:"max_count"`

	// MaxAge is how many days a rotated file is kept; 0 means age-unbounded
	// (still subject to MaxBackups). Default 30.
	MaxAge int `json:"max_day" yaml:"max_day"`

	// Compress gzips rotated backups, trimming roughly 90% of their size.
	// Default true.
	Compress bool `json:"compress" yaml:"compress"`

	// TotalSizeCap bounds the combined size in megabytes of all log files;
	// once exceeded the oldest are removed. 0 disables the cap, leaving
	// MaxBackups/MaxAge as the only limits.
	TotalSizeCap int `json:"total_size_cap" yaml:"total_size_cap"`

	// LocalTime names rotated files using local time instead of UTC.
	// Default true.
	LocalTime bool `json:"local_time" yaml:"local_time"`

	// Console also writes to stdout/stderr even when LogFile is set.
	// Default true (convenient while developing).
	Console bool `json:"console" yaml:"console"`

	// JSONFormat writes file output as structured JSON. With LogFile and
	// Console both set, the console copy uses the same JSON format; the
	// console alone (no LogFile) is written as text.
	// Default true (easier to ship to a log aggregator).
	JSONFormat bool `json:"json_format" yaml:"json_format"`
}

// DefaultLoggerConfig returns the baseline logging configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		LogFile:      "",
		Level:        "info",
		MaxSize:      100,
		MaxBackups:   10,
		MaxAge:       30,
		Compress:     true,
		TotalSizeCap: 0,
		LocalTime:    true,
		Console:      true,
		JSONFormat:   true,
	}
}

// Validate corrects out-of-range fields to their defaults in place.
func (c *LoggerConfig) Validate() error {
	if c.MaxSize <= 0 {
		c.MaxSize = 100
	}
	if c.MaxBackups < 0 {
		c.MaxBackups = 10
	}
	if c.MaxAge < 0 {
		c.MaxAge = 30
	}
	return nil
}
