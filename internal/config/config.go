package config

import (
	"fmt"
	"os"
	"strings"

	"codeberg.org/mutker/guard/internal/check"
	"codeberg.org/mutker/guard/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix = "GUARD"
	DefaultLogLevel  = string(LogLevelWarning)
	DefaultMaxLength = 4096

	MinMaxLength = 1
	MaxMaxLength = 1 << 20

	configName = "guard"
	configType = "toml"
	configDir  = "/etc"
)

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	MaxLength int    `mapstructure:"max_length"`
	Trim      bool   `mapstructure:"trim"`
	Upper     bool   `mapstructure:"upper"`

	// Args holds positional arguments left after flag parsing.
	Args []string `mapstructure:"-"`
}

func (c *Config) GetLogLevel() string { return c.LogLevel }
func (c *Config) GetMaxLength() int { return c.MaxLength }
func (c *Config) IsTrim() bool { return c.Trim }
func (c *Config) IsUpper() bool { return c.Upper }

// Load reads configuration from defaults, the config file, environment
// variables and args, in increasing order of precedence, and validates it.
// The config file is taken from --config, WithConfigFile or <PREFIX>_CONFIG;
// without any of them guard.toml in the config directory (/etc unless
// WithConfigDir is given) is used when present.
func Load(args []string, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{envPrefix: DefaultEnvPrefix, configDir: configDir}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errFactory.Wrap(ErrInvalidConfig, err)
		}
	}

	fs := newFlagSet(o)
	if err := fs.Parse(args); err != nil {
		return nil, errFactory.Wrap(ErrBindFlags, err)
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("max_length", DefaultMaxLength)
	v.SetDefault("trim", false)
	v.SetDefault("upper", false)

	for key, name := range map[string]string{
		"log_level":  "log-level",
		"max_length": "max-length",
		"trim":       "trim",
		"upper":      "upper",
	} {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, errFactory.Wrap(ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, configPath(fs, o), o.configDir); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(ErrReadConfig, err)
	}
	config.Args = fs.Args()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks every field against its allowed range
func (c *Config) Validate() error {
	errFactory := errors.New()

	if _, err := check.NotEmpty(c.LogLevel, "log_level"); err != nil {
		return errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithMessage(ErrInvalidLogLevel,
			fmt.Sprintf("Log level %q is not one of debug, info, warning, error.", c.LogLevel)).
			WithData(errors.Param{Name: "log_level"})
	}

	if _, err := check.InInterval(c.MaxLength, "max_length", MinMaxLength, MaxMaxLength); err != nil {
		return errFactory.Wrap(ErrInvalidConfig, err)
	}

	return nil
}

func newFlagSet(o options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	if o.output != nil {
		fs.SetOutput(o.output)
	}
	fs.String("config", "", "Path to the TOML configuration file")
	fs.String("log-level", DefaultLogLevel, "Log level: debug, info, warning, error")
	fs.Int("max-length", DefaultMaxLength, "Maximum accepted input length in runes")
	fs.Bool("trim", false, "Trim surrounding whitespace of each input line")
	fs.Bool("upper", false, "Upper-case the transliterated output")

	return fs
}

func configPath(fs *pflag.FlagSet, o options) string {
	if path, err := fs.GetString("config"); err == nil && path != "" {
		return path
	}
	if o.configPath != "" {
		return o.configPath
	}

	return os.Getenv(o.envPrefix + "_CONFIG")
}

func readConfigFile(v *viper.Viper, path, dir string) error {
	errFactory := errors.New()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType)
		if err := v.ReadInConfig(); err != nil {
			return errFactory.Wrap(ErrReadConfig, err)
		}

		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errFactory.Wrap(ErrReadConfig, err)
		}
	}

	return nil
}
