package service

import (
	"testing"
	"time"

	"airthings2mqtt/internal/core/domain"
	"airthings2mqtt/pkg/airthings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(value float64) *float64 {
	return &value
}

func i64(value int64) *int64 {
	return &value
}

func TestClassifyEmptySampleIsUnknown(t *testing.T) {

	assert := assert.New(t)

	assert.Equal(domain.AirQualityUnknown, Classify(airthings.Sample{}))
}

func TestClassifyCO2Thresholds(t *testing.T) {

	assert := assert.New(t)

	assert.Equal(domain.AirQualityPoor, Classify(airthings.Sample{CO2: f64(1000)}))
	assert.Equal(domain.AirQualityFair, Classify(airthings.Sample{CO2: f64(800)}))
	assert.Equal(domain.AirQualityExcellent, Classify(airthings.Sample{CO2: f64(799)}))
}

func TestClassifyFactorThresholds(t *testing.T) {

	cases := []struct {
		name   string
		sample airthings.Sample
		level  domain.AirQualityLevel
	}{
		{"mold poor", airthings.Sample{Mold: f64(5)}, domain.AirQualityPoor},
		{"mold fair", airthings.Sample{Mold: f64(3)}, domain.AirQualityFair},
		{"mold excellent", airthings.Sample{Mold: f64(2)}, domain.AirQualityExcellent},
		{"pm25 poor", airthings.Sample{PM25: f64(25)}, domain.AirQualityPoor},
		{"pm25 fair", airthings.Sample{PM25: f64(10)}, domain.AirQualityFair},
		{"pm25 excellent", airthings.Sample{PM25: f64(9.9)}, domain.AirQualityExcellent},
		{"radon poor", airthings.Sample{RadonShortTermAvg: f64(150)}, domain.AirQualityPoor},
		{"radon fair", airthings.Sample{RadonShortTermAvg: f64(100)}, domain.AirQualityFair},
		{"radon excellent", airthings.Sample{RadonShortTermAvg: f64(99)}, domain.AirQualityExcellent},
		{"voc poor", airthings.Sample{VOC: f64(2000)}, domain.AirQualityPoor},
		{"voc fair", airthings.Sample{VOC: f64(250)}, domain.AirQualityFair},
		{"voc excellent", airthings.Sample{VOC: f64(249)}, domain.AirQualityExcellent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.level, Classify(tc.sample))
		})
	}
}

func TestClassifyHumidityBand(t *testing.T) {

	assert := assert.New(t)

	assert.Equal(domain.AirQualityPoor, Classify(airthings.Sample{Humidity: f64(24)}))
	assert.Equal(domain.AirQualityPoor, Classify(airthings.Sample{Humidity: f64(70)}))
	assert.Equal(domain.AirQualityFair, Classify(airthings.Sample{Humidity: f64(25)}))
	assert.Equal(domain.AirQualityFair, Classify(airthings.Sample{Humidity: f64(29.9)}))
	assert.Equal(domain.AirQualityFair, Classify(airthings.Sample{Humidity: f64(60)}))
	assert.Equal(domain.AirQualityExcellent, Classify(airthings.Sample{Humidity: f64(50)}))
	assert.Equal(domain.AirQualityExcellent, Classify(airthings.Sample{Humidity: f64(30)}))
}

func TestClassifyWorstFactorWins(t *testing.T) {

	assert := assert.New(t)

	// one poor factor dominates any number of excellent ones
	sample := airthings.Sample{
		Humidity:          f64(45),
		CO2:               f64(500),
		VOC:               f64(100),
		RadonShortTermAvg: f64(160),
	}
	assert.Equal(domain.AirQualityPoor, Classify(sample))

	// an absent factor never lowers the running level
	sample.RadonShortTermAvg = nil
	assert.Equal(domain.AirQualityExcellent, Classify(sample))
}

func TestClassifyMonotonicPerFactor(t *testing.T) {

	require := require.New(t)

	base := airthings.Sample{
		Humidity: f64(45),
		CO2:      f64(500),
		PM25:     f64(5),
	}

	prev := Classify(base)
	for co2 := 500.0; co2 <= 1500; co2 += 50 {
		sample := base
		sample.CO2 = f64(co2)
		level := Classify(sample)
		require.GreaterOrEqual(level, prev, "raising co2 must never improve the rating")
		prev = level
	}
}

func TestVOCDensity(t *testing.T) {

	assert := assert.New(t)

	assert.Zero(VOCDensity(airthings.Sample{}), "no voc reading")

	// fallback temperature and pressure: 100 * 78 / 22.41 * (298/273)^-1
	density := VOCDensity(airthings.Sample{VOC: f64(100)})
	assert.InDelta(318.87, density, 0.1)

	// at 0 degC and standard pressure the molar volume correction is 1
	density = VOCDensity(airthings.Sample{VOC: f64(100), Temp: f64(0), Pressure: f64(1013)})
	assert.InDelta(100*78/22.41, density, 0.001)

	// lower pressure dilutes the mixture
	lowP := VOCDensity(airthings.Sample{VOC: f64(100), Temp: f64(0), Pressure: f64(900)})
	assert.Less(lowP, density)
}

func TestClassifyOrderIndependent(t *testing.T) {

	assert := assert.New(t)

	// the rating is a pure max over factors, so any subset combination must
	// rate the same as the worst of its members rated alone
	factors := []airthings.Sample{
		{Humidity: f64(65)},
		{CO2: f64(900)},
		{VOC: f64(2400)},
		{PM25: f64(4)},
	}

	worst := domain.AirQualityUnknown
	combined := airthings.Sample{}
	for _, factor := range factors {
		worst = worst.Worst(Classify(factor))
		if factor.Humidity != nil {
			combined.Humidity = factor.Humidity
		}
		if factor.CO2 != nil {
			combined.CO2 = factor.CO2
		}
		if factor.VOC != nil {
			combined.VOC = factor.VOC
		}
		if factor.PM25 != nil {
			combined.PM25 = factor.PM25
		}
	}

	assert.Equal(worst, Classify(combined))
	assert.Equal(domain.AirQualityPoor, worst)
}

func TestFresh(t *testing.T) {

	assert := assert.New(t)

	now := time.Unix(1700007200, 0)

	assert.False(Fresh(airthings.Sample{}, now), "no timestamp is never fresh")
	assert.True(Fresh(airthings.Sample{Time: i64(1700000001)}, now))
	assert.False(Fresh(airthings.Sample{Time: i64(1700000000)}, now), "exactly 7200s old is stale")
	assert.False(Fresh(airthings.Sample{Time: i64(1600000000)}, now))
}

func TestReadingActive(t *testing.T) {

	assert := assert.New(t)

	now := time.Unix(1700000100, 0)
	fresh := airthings.Sample{Temp: f64(21), Time: i64(1700000000)}
	stale := airthings.Sample{Temp: f64(21), Time: i64(1600000000)}

	assert.True(ReadingActive(fresh, fresh.Temp, now))
	assert.False(ReadingActive(stale, stale.Temp, now), "stale timestamp")
	assert.False(ReadingActive(fresh, fresh.CO2, now), "absent reading")
	assert.False(ReadingActive(airthings.Sample{Temp: f64(21)}, f64(21), now), "absent timestamp")
}
