// Package config resolves pcasn settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/viper"

	"github.com/OpenTraceLab/pcasn/pkg/library"
	"github.com/OpenTraceLab/pcasn/pkg/pcasn"
)

// Setting keys. Flags of the same name are bound to them.
const (
	KeyLogLevel     = "log-level"
	KeySplit        = "split"
	KeyStrictBraces = "strict-braces"
	KeyWorkers      = "workers"
	KeyExtensions   = "extensions"
)

// EnvPrefix prefixes environment overrides, e.g. PCASN_LOG_LEVEL.
const EnvPrefix = "PCASN"

// Split modes.
const (
	SplitLines      = "lines"
	SplitStructural = "structural"
)

// Config holds resolved settings.
type Config struct {
	LogLevel     string
	Split        string
	StrictBraces bool
	Workers      int
	Extensions   []string
}

// SetDefaults installs default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySplit, SplitLines)
	v.SetDefault(KeyStrictBraces, false)
	v.SetDefault(KeyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyExtensions, library.DefaultExtensions)
}

// Load resolves the configuration held by v, reading file first when it
// is not empty. Environment variables override the file; flags bound with
// BindPFlag override both.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	cfg := &Config{
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		Split:        strings.ToLower(strings.TrimSpace(v.GetString(KeySplit))),
		StrictBraces: v.GetBool(KeyStrictBraces),
		Workers:      v.GetInt(KeyWorkers),
		Extensions:   splitList(v.GetStringSlice(KeyExtensions)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList accepts both list values and a single comma separated string,
// which is how lists arrive from the environment.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if _, err := levelOption(c.LogLevel); err != nil {
		return err
	}
	switch c.Split {
	case SplitLines, SplitStructural:
	default:
		return fmt.Errorf("config: unknown split mode %q (want %q or %q)", c.Split, SplitLines, SplitStructural)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	return nil
}

func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info", "":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("config: unknown log level %q", name)
	}
}

// Logger builds a logfmt logger writing to w, filtered at the configured
// level.
func (c *Config) Logger(w io.Writer) log.Logger {
	opt, err := levelOption(c.LogLevel)
	if err != nil {
		opt = level.AllowInfo()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, opt)
}

// ReaderOptions translates the settings into pcasn reader options.
func (c *Config) ReaderOptions(logger log.Logger) []pcasn.Option {
	opts := []pcasn.Option{pcasn.WithLogger(logger)}
	if c.Split == SplitStructural {
		opts = append(opts, pcasn.WithStructuralSplit())
	}
	if c.StrictBraces {
		opts = append(opts, pcasn.WithStrictBraceCounting())
	}
	return opts
}

// LibraryOptions translates the settings into library options.
func (c *Config) LibraryOptions(logger log.Logger) []library.Option {
	return []library.Option{
		library.WithLogger(logger),
		library.WithWorkers(c.Workers),
		library.WithExtensions(c.Extensions...),
		library.WithReaderOptions(c.ReaderOptions(logger)...),
	}
}
