package airthings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDefaultsWhenEmpty(t *testing.T) {

	assert := assert.New(t)

	var sample Sample

	assert.EqualValues(100, sample.BatteryLevel(), "battery default")
	assert.False(sample.BatteryLow(), "battery low default")
	assert.EqualValues(0, sample.CO2Level(), "co2 default")
	assert.False(sample.CO2Detected(), "co2 detected default")
	assert.EqualValues(0, sample.RelativeHumidity(), "humidity default")
	assert.EqualValues(0, sample.MoldLevel(), "mold default")
	assert.EqualValues(0, sample.PM25Level(), "pm25 default")
	assert.EqualValues(0, sample.RadonLevel(), "radon default")
	assert.EqualValues(1012, sample.AirPressure(), "pressure default")
	assert.Nil(sample.Temperature(), "temperature has no default")
}

func TestSampleBatteryLowBoundary(t *testing.T) {

	assert := assert.New(t)

	assert.True(Sample{Battery: f64(10)}.BatteryLow())
	assert.True(Sample{Battery: f64(3)}.BatteryLow())
	assert.False(Sample{Battery: f64(11)}.BatteryLow())
}

func TestSampleCO2DetectedBoundary(t *testing.T) {

	assert := assert.New(t)

	assert.True(Sample{CO2: f64(1000)}.CO2Detected())
	assert.False(Sample{CO2: f64(999)}.CO2Detected())
}

func TestSampleDecodeAbsentIsNotZero(t *testing.T) {

	require := require.New(t)

	// a Wave Radon payload has no co2/voc/pressure fields
	payload := `{"data":{"battery":88,"humidity":45.0,"radonShortTermAvg":77,"temp":20.5,"time":1700000000}}`

	var resp latestSamplesResponse
	require.NoError(json.Unmarshal([]byte(payload), &resp))

	sample := resp.Data
	require.Nil(sample.CO2, "absent co2 stays nil")
	require.Nil(sample.VOC, "absent voc stays nil")
	require.Nil(sample.Pressure, "absent pressure stays nil")
	require.NotNil(sample.Battery)
	require.EqualValues(88, *sample.Battery)
	require.NotNil(sample.Time)
	require.EqualValues(1700000000, *sample.Time)
}
