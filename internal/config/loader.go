package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/dagu-org/psig/internal/build"
	"github.com/dagu-org/psig/internal/library"
	"github.com/dagu-org/psig/internal/signal"
)

// DefaultStopOn is used when watch.stopOn is not configured.
var DefaultStopOn = []signal.Signal{signal.SIGINT, signal.SIGTERM}

// ConfigLoader reads and merges configuration from the config file, the
// environment and bound command line flags.
type ConfigLoader struct {
	v          *viper.Viper
	configFile string
	configDir  string
	warnings   []string
}

// ConfigLoaderOption defines a functional option for configuring a ConfigLoader.
type ConfigLoaderOption func(*ConfigLoader)

// WithConfigFile sets an explicit configuration file path.
func WithConfigFile(configFile string) ConfigLoaderOption {
	return func(l *ConfigLoader) {
		l.configFile = configFile
	}
}

// WithConfigDir overrides the directory searched for config.yaml, which
// defaults to $XDG_CONFIG_HOME/psig.
func WithConfigDir(dir string) ConfigLoaderOption {
	return func(l *ConfigLoader) {
		l.configDir = dir
	}
}

// NewConfigLoader creates a ConfigLoader with the given viper instance and options.
func NewConfigLoader(v *viper.Viper, options ...ConfigLoaderOption) *ConfigLoader {
	loader := &ConfigLoader{v: v}
	for _, opt := range options {
		opt(loader)
	}
	return loader
}

// Load reads the global viper instance.
func Load(options ...ConfigLoaderOption) (*Config, error) {
	return NewConfigLoader(viper.GetViper(), options...).Load()
}

// Load reads configuration files, applies defaults and environment overrides,
// and returns a validated Config instance.
func (l *ConfigLoader) Load() (*Config, error) {
	configDir := l.configDir
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, build.Slug)
	}

	l.configureViper(configDir, l.configFile)
	l.bindEnvironmentVariables()
	l.setViperDefaultValues()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var def Definition
	if err := l.v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg := l.buildConfig(def)
	if used := l.v.ConfigFileUsed(); used != "" {
		abs, err := filepath.Abs(used)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config file path %q: %w", used, err)
		}
		cfg.ConfigFileUsed = abs
	}
	cfg.Warnings = l.warnings

	return cfg, nil
}

func (l *ConfigLoader) buildConfig(def Definition) *Config {
	cfg := &Config{
		Debug:     def.Debug,
		LogFormat: def.LogFormat,
		QueueSize: def.QueueSize,
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		l.warnings = append(l.warnings, fmt.Sprintf("Invalid logFormat value: %s, using text", cfg.LogFormat))
		cfg.LogFormat = "text"
	}

	if cfg.QueueSize <= 0 {
		l.warnings = append(l.warnings, fmt.Sprintf("Invalid queueSize value: %d, using %d", cfg.QueueSize, library.DefaultQueueSize))
		cfg.QueueSize = library.DefaultQueueSize
	}

	if def.Metrics != nil {
		cfg.Metrics.Addr = strings.TrimSpace(def.Metrics.Addr)
	}

	if def.Watch != nil {
		cfg.Watch.StopOn = l.parseSignals("watch.stopOn", parseStringList(def.Watch.StopOn))
	}
	if len(cfg.Watch.StopOn) == 0 {
		cfg.Watch.StopOn = append([]signal.Signal(nil), DefaultStopOn...)
	}

	return cfg
}

// parseSignals resolves names, dropping unknown and unhookable signals with a warning.
func (l *ConfigLoader) parseSignals(fieldName string, names []string) []signal.Signal {
	var out []signal.Signal
	seen := make(map[signal.Signal]bool, len(names))
	for _, name := range names {
		sig, err := signal.Parse(name)
		if err != nil {
			l.warnings = append(l.warnings, fmt.Sprintf("Invalid %s value: %s", fieldName, name))
			continue
		}
		if !sig.IsHookable() {
			l.warnings = append(l.warnings, fmt.Sprintf("%s cannot contain %s", fieldName, sig.Name()))
			continue
		}
		if seen[sig] {
			continue
		}
		seen[sig] = true
		out = append(out, sig)
	}
	return out
}

func (l *ConfigLoader) setViperDefaultValues() {
	l.v.SetDefault("debug", false)
	l.v.SetDefault("logFormat", "text")
	l.v.SetDefault("queueSize", library.DefaultQueueSize)
	l.v.SetDefault("metrics.addr", "")
}

type envBinding struct {
	key string
	env string
}

var envBindings = []envBinding{
	{key: "debug", env: "DEBUG"},
	{key: "logFormat", env: "LOG_FORMAT"},
	{key: "queueSize", env: "QUEUE_SIZE"},
	{key: "metrics.addr", env: "METRICS_ADDR"},
	{key: "watch.stopOn", env: "WATCH_STOP_ON"},
}

func (l *ConfigLoader) bindEnvironmentVariables() {
	prefix := strings.ToUpper(build.Slug) + "_"
	for _, b := range envBindings {
		_ = l.v.BindEnv(b.key, prefix+b.env)
	}
}

func (l *ConfigLoader) configureViper(configDir, configFile string) {
	if configFile == "" {
		l.v.AddConfigPath(configDir)
		l.v.SetConfigName("config")
	} else {
		l.v.SetConfigFile(configFile)
	}
	l.v.SetConfigType("yaml")
	l.v.SetEnvPrefix(strings.ToUpper(build.Slug))
	l.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	l.v.AutomaticEnv()
}

// parseStringList parses comma-separated strings or string slices, filtering empty entries.
func parseStringList(input any) []string {
	var result []string

	switch v := input.(type) {
	case string:
		for s := range strings.SplitSeq(v, ",") {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					result = append(result, trimmed)
				}
			}
		}
	case []string:
		for _, s := range v {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	}

	return result
}
