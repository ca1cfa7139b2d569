package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dagu-org/psig/internal/callback"
	"github.com/dagu-org/psig/internal/signal"
)

type fakeLibrary struct {
	running    bool
	registry   *callback.Registry
	deliveries map[signal.Signal]uint64
}

func (f *fakeLibrary) IsRunning() bool                   { return f.running }
func (f *fakeLibrary) Callbacks() *callback.Registry     { return f.registry }
func (f *fakeLibrary) Deliveries(s signal.Signal) uint64 { return f.deliveries[s] }

func gather(t *testing.T, c *Collector) map[string]*dto.MetricFamily {
	t.Helper()
	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(c))
	families, err := registry.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		out[mf.GetName()] = mf
	}
	return out
}

func TestCollector(t *testing.T) {
	registry := callback.NewRegistry()
	require.True(t, registry.HookOnAll(callback.New(func(callback.Info) {})))
	require.True(t, registry.HookOnSignal(signal.SIGINT, callback.New(func(callback.Info) {})))

	lib := &fakeLibrary{
		running:  true,
		registry: registry,
		deliveries: map[signal.Signal]uint64{
			signal.SIGINT:   3,
			signal.SIGRTMIN: 1,
		},
	}
	families := gather(t, NewCollector("1.2.3", lib))

	info := families["psig_info"]
	require.NotNil(t, info)
	labels := map[string]string{}
	for _, lp := range info.GetMetric()[0].GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	assert.Equal(t, "1.2.3", labels["version"])
	assert.NotEmpty(t, labels["go_version"])

	assert.Equal(t, float64(1), families["psig_running"].GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, float64(2), families["psig_callback_slots_used"].GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, float64(callback.Capacity), families["psig_callback_slots_capacity"].GetMetric()[0].GetGauge().GetValue())
	assert.GreaterOrEqual(t, families["psig_uptime_seconds"].GetMetric()[0].GetGauge().GetValue(), float64(0))

	delivered := families["psig_signals_delivered_total"]
	require.NotNil(t, delivered)
	assert.Equal(t, dto.MetricType_COUNTER, delivered.GetType())
	got := map[string]float64{}
	for _, m := range delivered.GetMetric() {
		got[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"SIGINT": 3, "SIGRTMIN": 1}, got)
}

func TestCollector_NotRunning(t *testing.T) {
	lib := &fakeLibrary{registry: callback.NewRegistry()}
	families := gather(t, NewCollector("dev", lib))

	assert.Equal(t, float64(0), families["psig_running"].GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, float64(0), families["psig_callback_slots_used"].GetMetric()[0].GetGauge().GetValue())
	assert.NotContains(t, families, "psig_signals_delivered_total")
}

func TestNewRegistry(t *testing.T) {
	lib := &fakeLibrary{registry: callback.NewRegistry()}
	families, err := NewRegistry(NewCollector("dev", lib)).Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["psig_info"])
	assert.True(t, names["go_goroutines"])
}
