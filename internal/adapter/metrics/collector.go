package metrics

import (
	"context"
	"time"

	"airthings2mqtt/internal/core/port"
	"airthings2mqtt/internal/core/service"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes the latest sample as Prometheus gauges. It reads through
// the shared sample cache, so scrapes are served from the cached snapshot and
// never trigger more than one upstream fetch per TTL window.
type Collector struct {
	source       port.SampleSource
	serialNumber string

	humidity    *prometheus.Desc
	radonShort  *prometheus.Desc
	temperature *prometheus.Desc
	atmPressure *prometheus.Desc
	co2Level    *prometheus.Desc
	vocLevel    *prometheus.Desc
	vocDensity  *prometheus.Desc
	pm25Level   *prometheus.Desc
	moldLevel   *prometheus.Desc
	battery     *prometheus.Desc
	airQuality  *prometheus.Desc
	fresh       *prometheus.Desc
}

func NewCollector(source port.SampleSource, serialNumber string) *Collector {
	return &Collector{
		source:       source,
		serialNumber: serialNumber,
		humidity:     newDesc("air_humidity", "Humidity (units: % of relative Humidity)"),
		radonShort:   newDesc("air_radon_short", "Radon Short Term estimate (units: Bq/m3)"),
		temperature:  newDesc("air_temperature", "Air Temperature (units: degrees Celsius)"),
		atmPressure:  newDesc("air_atm_pressure", "Atmospheric Pressure (units: hPa)"),
		co2Level:     newDesc("air_co2_level", "Air Carbon Dioxide level (units: ppm)"),
		vocLevel:     newDesc("air_voc_level", "Air Volatile Organic Compounds level (units: ppb)"),
		vocDensity:   newDesc("air_voc_density", "Air Volatile Organic Compounds density (units: ug/m3)"),
		pm25Level:    newDesc("air_pm25_level", "Particulate matter 2.5 (units: ug/m3)"),
		moldLevel:    newDesc("air_mold_level", "Mold risk indication (units: 0-10 scale)"),
		battery:      newDesc("air_battery_level", "Device battery level (units: %)"),
		airQuality:   newDesc("air_quality_level", "Overall air quality level (0 unknown, 1 excellent, 2 fair, 3 poor)"),
		fresh:        newDesc("air_sample_fresh", "Whether the last sample is recent enough to trust (1 fresh, 0 stale)"),
	}
}

func newDesc(name string, help string) *prometheus.Desc {
	return prometheus.NewDesc(name, help, []string{"serial_number"}, nil)
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.humidity
	ch <- c.radonShort
	ch <- c.temperature
	ch <- c.atmPressure
	ch <- c.co2Level
	ch <- c.vocLevel
	ch <- c.vocDensity
	ch <- c.pm25Level
	ch <- c.moldLevel
	ch <- c.battery
	ch <- c.airQuality
	ch <- c.fresh
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	sample := c.source.GetSnapshot(context.Background())
	now := time.Now()

	c.gauge(ch, c.battery, sample.BatteryLevel())
	c.gauge(ch, c.fresh, bool2Value(service.Fresh(sample, now)))

	if !service.Fresh(sample, now) {
		return
	}

	c.gauge(ch, c.airQuality, float64(service.Classify(sample)))

	c.gaugeIfPresent(ch, c.humidity, sample.Humidity)
	c.gaugeIfPresent(ch, c.radonShort, sample.RadonShortTermAvg)
	c.gaugeIfPresent(ch, c.temperature, sample.Temp)
	c.gaugeIfPresent(ch, c.atmPressure, sample.Pressure)
	c.gaugeIfPresent(ch, c.co2Level, sample.CO2)
	c.gaugeIfPresent(ch, c.vocLevel, sample.VOC)
	c.gaugeIfPresent(ch, c.pm25Level, sample.PM25)
	c.gaugeIfPresent(ch, c.moldLevel, sample.Mold)

	if sample.VOC != nil {
		c.gauge(ch, c.vocDensity, service.VOCDensity(sample))
	}
}

func (c *Collector) gauge(ch chan<- prometheus.Metric, desc *prometheus.Desc, value float64) {
	ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value, c.serialNumber)
}

func (c *Collector) gaugeIfPresent(ch chan<- prometheus.Metric, desc *prometheus.Desc, value *float64) {
	if value != nil {
		c.gauge(ch, desc, *value)
	}
}

func bool2Value(value bool) float64 {
	if value {
		return 1
	}
	return 0
}

var _ prometheus.Collector = (*Collector)(nil)
