package events

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

func eventById(events []any, id string) any {
	for _, ev := range events {
		if sensorEv, ok := ev.(domain.SensorUpdateEvent); ok && sensorEv.SensorId() == id {
			return ev
		}
	}
	return nil
}

func TestSampleToUpdateEventsFresh(t *testing.T) {

	require := require.New(t)

	now := time.Unix(1700000100, 0)
	sample := airthings.Sample{
		Battery:  f64(84),
		CO2:      f64(1050),
		Humidity: f64(41.5),
		Temp:     f64(21.8),
		VOC:      f64(120),
		Time:     i64(1700000000),
	}

	events := SampleToUpdateEvents(sample, now)

	battery := eventById(events, SENSOR_ID_BATTERY)
	require.NotNil(battery)
	require.EqualValues(84, battery.(domain.FloatSensorUpdateEvent).Value)

	aq := eventById(events, SENSOR_ID_AIR_QUALITY)
	require.NotNil(aq)
	require.Equal("poor", aq.(domain.TextSensorUpdateEvent).Value, "co2 over 1000 dominates")

	co2Detected := eventById(events, SENSOR_ID_CO2_DETECTED)
	require.NotNil(co2Detected)
	require.True(co2Detected.(domain.BinarySensorUpdateEvent).Value)

	temp := eventById(events, SENSOR_ID_TEMPERATURE)
	require.NotNil(temp)
	require.EqualValues(21.8, temp.(domain.FloatSensorUpdateEvent).Value)
	require.EqualValues(1, temp.(domain.FloatSensorUpdateEvent).Decimals)

	pressure := eventById(events, SENSOR_ID_PRESSURE)
	require.NotNil(pressure)
	require.EqualValues(1012, pressure.(domain.FloatSensorUpdateEvent).Value, "absent pressure publishes its default")
}

func TestSampleToUpdateEventsStale(t *testing.T) {

	assert := assert.New(t)

	now := time.Unix(1700000000, 0)
	sample := airthings.Sample{
		Battery: f64(9),
		CO2:     f64(500),
		Time:    i64(1600000000),
	}

	events := SampleToUpdateEvents(sample, now)

	assert.Nil(eventById(events, SENSOR_ID_AIR_QUALITY), "stale snapshot publishes no readings")
	assert.Nil(eventById(events, SENSOR_ID_CO2))

	battery := eventById(events, SENSOR_ID_BATTERY)
	assert.NotNil(battery, "battery diagnostics are not reading-gated")
	batteryLow := eventById(events, SENSOR_ID_BATTERY_LOW)
	assert.NotNil(batteryLow)
	assert.True(batteryLow.(domain.BinarySensorUpdateEvent).Value)
}

func TestSampleToUpdateEventsMissingTemperatureSkipped(t *testing.T) {

	assert := assert.New(t)

	now := time.Unix(1700000100, 0)
	sample := airthings.Sample{
		Humidity: f64(50),
		Time:     i64(1700000000),
	}

	events := SampleToUpdateEvents(sample, now)

	assert.Nil(eventById(events, SENSOR_ID_TEMPERATURE), "temperature has no default")
	assert.NotNil(eventById(events, SENSOR_ID_HUMIDITY))
}

func TestMonitorSensorsCapabilityGating(t *testing.T) {

	assert := assert.New(t)

	device := MonitorDevice(&airthings.DeviceInfo{SerialNumber: "2930000001", Model: "Wave Plus"})

	wavePlus := MonitorSensors(device, airthings.LookupCapabilities("2930000001"))
	ids := make(map[string]bool)
	for _, s := range wavePlus {
		ids[s.Id] = true
	}
	assert.True(ids[SENSOR_ID_AIR_QUALITY])
	assert.True(ids[SENSOR_ID_CO2])
	assert.True(ids[SENSOR_ID_RADON])
	assert.False(ids[SENSOR_ID_PM25], "Wave Plus has no particle sensor")
	assert.False(ids[SENSOR_ID_MOLD])

	none := MonitorSensors(device, airthings.DeviceCapabilities{})
	assert.Empty(none, "unknown device registers nothing")
}

func TestBridgeSensors(t *testing.T) {

	assert := assert.New(t)

	bridge := BridgeDevice("airthings2mqtt")
	sensors := BridgeSensors(bridge)

	assert.Len(sensors, 1)
	assert.Equal(SENSOR_ID_BRIDGE_STATE, sensors[0].Id)
	assert.Equal(SENSOR_TYPE_BINARY, sensors[0].SensorType)
}
