package config

import "io"

// Provider defines the interface for accessing configuration values
// All configuration values are immutable after initial loading
type Provider interface {
	// GetLogLevel returns the configured logging level
	GetLogLevel() string

	// GetMaxLength returns the longest accepted input, in runes
	GetMaxLength() int

	// IsTrim returns whether input lines are trimmed before processing
	IsTrim() bool

	// IsUpper returns whether output is upper-cased
	IsUpper() bool
}

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath string
	configDir  string
	envPrefix  string
	output     io.Writer
}

// WithConfigFile specifies an explicit configuration file path
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithConfigDir sets the directory searched for guard.toml when no
// explicit config file is given. Default is "/etc"
func WithConfigDir(dir string) Option {
	return func(o *options) error {
		o.configDir = dir
		return nil
	}
}

// WithOutput sets where flag usage and parse errors are written.
// Default is os.Stderr
func WithOutput(w io.Writer) Option {
	return func(o *options) error {
		o.output = w
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "GUARD"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		o.envPrefix = prefix
		return nil
	}
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}
