package telemetry

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dagu-org/psig/internal/callback"
	"github.com/dagu-org/psig/internal/signal"
)

// Library is the view of a signal library the collector reads from.
type Library interface {
	IsRunning() bool
	Callbacks() *callback.Registry
	Deliveries(sig signal.Signal) uint64
}

// Collector implements prometheus.Collector interface
type Collector struct {
	startTime time.Time
	version   string
	lib       Library

	// Metric descriptors
	infoDesc          *prometheus.Desc
	uptimeDesc        *prometheus.Desc
	runningDesc       *prometheus.Desc
	slotsUsedDesc     *prometheus.Desc
	slotsCapacityDesc *prometheus.Desc
	deliveredDesc     *prometheus.Desc
}

// NewCollector creates a new metrics collector
func NewCollector(version string, lib Library) *Collector {
	return &Collector{
		startTime: time.Now(),
		version:   version,
		lib:       lib,

		infoDesc: prometheus.NewDesc(
			"psig_info",
			"psig build information",
			[]string{"version", "go_version"},
			nil,
		),
		uptimeDesc: prometheus.NewDesc(
			"psig_uptime_seconds",
			"Time since the collector was created",
			nil,
			nil,
		),
		runningDesc: prometheus.NewDesc(
			"psig_running",
			"Whether signal handlers are installed",
			nil,
			nil,
		),
		slotsUsedDesc: prometheus.NewDesc(
			"psig_callback_slots_used",
			"Number of occupied callback slots",
			nil,
			nil,
		),
		slotsCapacityDesc: prometheus.NewDesc(
			"psig_callback_slots_capacity",
			"Number of callback slots",
			nil,
			nil,
		),
		deliveredDesc: prometheus.NewDesc(
			"psig_signals_delivered_total",
			"Total number of dispatched signals by signal name",
			[]string{"signal"},
			nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.infoDesc
	ch <- c.uptimeDesc
	ch <- c.runningDesc
	ch <- c.slotsUsedDesc
	ch <- c.slotsCapacityDesc
	ch <- c.deliveredDesc
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		c.infoDesc,
		prometheus.GaugeValue,
		1,
		c.version,
		runtime.Version(),
	)

	ch <- prometheus.MustNewConstMetric(
		c.uptimeDesc,
		prometheus.GaugeValue,
		time.Since(c.startTime).Seconds(),
	)

	running := float64(0)
	if c.lib.IsRunning() {
		running = 1
	}
	ch <- prometheus.MustNewConstMetric(c.runningDesc, prometheus.GaugeValue, running)

	ch <- prometheus.MustNewConstMetric(
		c.slotsUsedDesc,
		prometheus.GaugeValue,
		float64(c.lib.Callbacks().Len()),
	)
	ch <- prometheus.MustNewConstMetric(
		c.slotsCapacityDesc,
		prometheus.GaugeValue,
		callback.Capacity,
	)

	// Only signals seen at least once are exported to keep the series count low.
	for _, sig := range signal.All() {
		n := c.lib.Deliveries(sig)
		if n == 0 {
			continue
		}
		ch <- prometheus.MustNewConstMetric(
			c.deliveredDesc,
			prometheus.CounterValue,
			float64(n),
			sig.Name(),
		)
	}
}

// NewRegistry creates a new Prometheus registry with the psig collector
func NewRegistry(collector *Collector) *prometheus.Registry {
	registry := prometheus.NewRegistry()

	registry.MustRegister(collector)

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return registry
}
