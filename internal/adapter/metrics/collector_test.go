package metrics

import (
	"context"
	"testing"
	"time"

	"airthings2mqtt/pkg/airthings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	sample airthings.Sample
}

func (s staticSource) GetSnapshot(_ context.Context) airthings.Sample {
	return s.sample
}

func collect(t *testing.T, c *Collector) map[string]float64 {
	t.Helper()

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	families, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			assert.Equal(t, "serial_number", m.GetLabel()[0].GetName())
			assert.Equal(t, "2930000001", m.GetLabel()[0].GetValue())
			values[fam.GetName()] = m.GetGauge().GetValue()
		}
	}
	return values
}

func TestCollectorFreshSample(t *testing.T) {

	now := time.Now().Unix()

	source := staticSource{sample: airthings.Sample{
		Battery:           f64(92),
		CO2:               f64(640),
		Humidity:          f64(41.5),
		Pressure:          f64(1001.3),
		RadonShortTermAvg: f64(38),
		Temp:              f64(21.8),
		VOC:               f64(120),
		Time:              &now,
	}}

	values := collect(t, NewCollector(source, "2930000001"))

	assert.Equal(t, 92.0, values["air_battery_level"])
	assert.Equal(t, 1.0, values["air_sample_fresh"])
	assert.Equal(t, 640.0, values["air_co2_level"])
	assert.Equal(t, 41.5, values["air_humidity"])
	assert.Equal(t, 38.0, values["air_radon_short"])
	assert.Equal(t, 21.8, values["air_temperature"])
	assert.Equal(t, 120.0, values["air_voc_level"])
	assert.InDelta(t, 382.3, values["air_voc_density"], 0.5)
	assert.Equal(t, 1.0, values["air_quality_level"], "excellent")

	_, hasPM25 := values["air_pm25_level"]
	assert.False(t, hasPM25, "absent reading exports no series")
}

func TestCollectorStaleSample(t *testing.T) {

	stale := time.Now().Add(-3 * time.Hour).Unix()

	source := staticSource{sample: airthings.Sample{
		Battery: f64(15),
		CO2:     f64(1200),
		Time:    &stale,
	}}

	values := collect(t, NewCollector(source, "2930000001"))

	assert.Equal(t, 15.0, values["air_battery_level"])
	assert.Equal(t, 0.0, values["air_sample_fresh"])

	_, hasCO2 := values["air_co2_level"]
	assert.False(t, hasCO2, "stale readings export no series")
}

func TestCollectorEmptySample(t *testing.T) {

	values := collect(t, NewCollector(staticSource{}, "2930000001"))

	assert.Equal(t, 100.0, values["air_battery_level"], "battery defaults to full")
	assert.Equal(t, 0.0, values["air_sample_fresh"])
}

func f64(value float64) *float64 {
	return &value
}
