package config

// Definition mirrors the on-disk configuration file.
type Definition struct {
	Debug     bool        `mapstructure:"debug"`
	LogFormat string      `mapstructure:"logFormat"`
	QueueSize int         `mapstructure:"queueSize"`
	Metrics   *MetricsDef `mapstructure:"metrics"`
	Watch     *WatchDef   `mapstructure:"watch"`
}

type MetricsDef struct {
	Addr string `mapstructure:"addr"`
}

type WatchDef struct {
	// StopOn accepts a list of names or a comma separated string.
	StopOn any `mapstructure:"stopOn"`
}
