// Package config loads logview settings from YAML files and LOGVIEW_*
// environment variables.
//
// Example file:
//
//	buffer:
//	  parallelism: 8
//	  parallel_threshold: 65536
//	datetime:
//	  min_len: 10
//	  max_len: 42
//	  formats: ["2006-01-02 15:04:05", "02/Jan/2006:15:04:05 -0700"]
//	addr:
//	  delimiters: " ,;[]"
//
// Every key can be overridden from the environment by upper-casing it,
// replacing dots with underscores and adding the LOGVIEW_ prefix, e.g.
// LOGVIEW_BUFFER_PARALLELISM=4.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coregx/logview"
	"github.com/coregx/logview/extract"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "LOGVIEW"

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Error describes an invalid configuration value.
type Error struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "config: invalid " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig.
func (e *Error) Unwrap() error {
	return ErrInvalidConfig
}

// Config holds all settings.
type Config struct {
	Buffer   BufferConfig   `mapstructure:"buffer"`
	DateTime DateTimeConfig `mapstructure:"datetime"`
	Addr     AddrConfig     `mapstructure:"addr"`
}

// BufferConfig configures log buffers.
type BufferConfig struct {
	// Parallelism is the number of goroutines used for indexing and ParMap.
	// Zero means GOMAXPROCS.
	Parallelism int `mapstructure:"parallelism"`
	// ParallelThreshold is the content size from which indexing runs in
	// parallel. Negative disables parallel indexing.
	ParallelThreshold int `mapstructure:"parallel_threshold"`
}

// DateTimeConfig configures date/time extraction.
type DateTimeConfig struct {
	MinLen int `mapstructure:"min_len"`
	MaxLen int `mapstructure:"max_len"`
	// Formats replaces the built-in layout table when non-empty.
	Formats []string `mapstructure:"formats"`
}

// AddrConfig configures IP and socket address extraction.
type AddrConfig struct {
	Delimiters string `mapstructure:"delimiters"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Buffer: BufferConfig{
			ParallelThreshold: logview.DefaultParallelThreshold,
		},
		DateTime: DateTimeConfig{
			MinLen: extract.DefaultMinLen,
			MaxLen: extract.DefaultMaxLen,
		},
		Addr: AddrConfig{
			Delimiters: extract.DefaultDelimiters,
		},
	}
}

// Validate checks the configuration for values that would make extraction
// or indexing misbehave.
func (c Config) Validate() error {
	if c.Buffer.Parallelism < 0 {
		return &Error{Field: "buffer.parallelism", Message: "must not be negative"}
	}
	if c.DateTime.MinLen <= 0 {
		return &Error{Field: "datetime.min_len", Message: "must be positive"}
	}
	if c.DateTime.MaxLen <= c.DateTime.MinLen {
		return &Error{
			Field:   "datetime.max_len",
			Message: fmt.Sprintf("must be greater than min_len (%d)", c.DateTime.MinLen),
		}
	}
	for i, f := range c.DateTime.Formats {
		if strings.TrimSpace(f) == "" {
			return &Error{Field: fmt.Sprintf("datetime.formats[%d]", i), Message: "must not be blank"}
		}
	}
	if c.Addr.Delimiters == "" {
		return &Error{Field: "addr.delimiters", Message: "must not be empty"}
	}
	return nil
}

// BufferOptions returns the options for logview.New.
func (c Config) BufferOptions() []logview.Option {
	opts := []logview.Option{logview.WithParallelThreshold(c.Buffer.ParallelThreshold)}
	if c.Buffer.Parallelism > 0 {
		opts = append(opts, logview.WithParallelism(c.Buffer.Parallelism))
	}
	return opts
}

// DateTimeExtractor returns the configured date/time extractor.
func (c Config) DateTimeExtractor() extract.DateTimeExtractor {
	ex := extract.DateTimeExtractor{MinLen: c.DateTime.MinLen, MaxLen: c.DateTime.MaxLen}
	if len(c.DateTime.Formats) > 0 {
		ex.Parser = extract.FormatTable(c.DateTime.Formats)
	}
	return ex
}

// IPAddrExtractor returns the configured IP address extractor.
func (c Config) IPAddrExtractor() extract.IPAddrExtractor {
	return extract.IPAddrExtractor{Delimiters: c.Addr.Delimiters}
}

// SocketAddrExtractor returns the configured socket address extractor.
func (c Config) SocketAddrExtractor() extract.SocketAddrExtractor {
	return extract.SocketAddrExtractor{Delimiters: c.Addr.Delimiters}
}
