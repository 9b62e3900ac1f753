package mqtt

import (
	"testing"

	"airthings2mqtt/internal/config"
	"airthings2mqtt/internal/core/domain"
	"airthings2mqtt/internal/core/events"

	"github.com/stretchr/testify/assert"
)

func testClient() *MQTTClient {
	return &MQTTClient{
		cfg: config.MQTTConfig{
			BaseTopic: "loremTopic",
		},
	}
}

func TestStateTopics(t *testing.T) {

	assert := assert.New(t)

	client := testClient()

	assert.Equal("loremTopic/bridge/state", client.BridgeStateTopic(), "bridge state topic")
	assert.Equal("loremTopic/sensor/co2/state", client.SensorStateTopic("co2"), "sensor state topic")
	assert.Equal("loremTopic/binary_sensor/co2_detected/state", client.BinarySensorStateTopic("co2_detected"), "binary sensor state topic")
}

func TestHADiscoverySensorTopic(t *testing.T) {

	assert := assert.New(t)

	sensor := domain.GenericSensor{
		Device:     domain.Device{Id: "airthings_abcd1234"},
		Id:         events.SENSOR_ID_TEMPERATURE,
		SensorType: events.SENSOR_TYPE_SENSOR,
	}

	assert.Equal("homeassistant/sensor/airthings_abcd1234/temperature/config", HADiscoverySensorTopic(sensor))
}

func TestGenericSensorToHADiscoveryMessage(t *testing.T) {

	assert := assert.New(t)

	client := testClient()

	sensor := domain.GenericSensor{
		Device:            domain.Device{Id: "airthings_abcd1234", Manufacturer: "Airthings"},
		Id:                events.SENSOR_ID_CO2,
		SensorType:        events.SENSOR_TYPE_SENSOR,
		Name:              "CO2",
		StateClass:        events.STATE_CLASS_MEASUREMENT,
		DeviceClass:       events.DEVICE_CLASS_CO2,
		UnitOfMeasurement: "ppm",
		UniqueId:          "uid_airthings_abcd1234_co2",
	}

	msg := GenericSensorToHADiscoveryMessage(client, sensor)

	assert.Equal("loremTopic/sensor/co2/state", msg.StateTopic, "state topic")
	assert.Equal("loremTopic/bridge/state", msg.AvTopic, "availability topic")
	assert.Equal("carbon_dioxide", msg.DeviceClass, "device class")
	assert.Equal("uid_airthings_abcd1234_co2", msg.UniqueId, "unique id")
	assert.Equal("mqtt", msg.Platform, "platform")
	assert.Empty(msg.PayloadOn, "no on payload for plain sensor")
}

func TestBinarySensorToHADiscoveryMessage(t *testing.T) {

	assert := assert.New(t)

	client := testClient()

	sensor := domain.GenericSensor{
		Device:      domain.Device{Id: "airthings_abcd1234"},
		Id:          events.SENSOR_ID_CO2_DETECTED,
		SensorType:  events.SENSOR_TYPE_BINARY,
		Name:        "CO2 detected",
		DeviceClass: events.DEVICE_CLASS_GAS,
		UniqueId:    "uid_airthings_abcd1234_co2_detected",
	}

	msg := GenericSensorToHADiscoveryMessage(client, sensor)

	assert.Equal("loremTopic/binary_sensor/co2_detected/state", msg.StateTopic, "state topic")
	assert.Equal(MQTT_PAYLOAD_ON, msg.PayloadOn, "on payload")
	assert.Equal(MQTT_PAYLOAD_OFF, msg.PayloadOff, "off payload")
}

func TestBridgeSensorToHADiscoveryMessage(t *testing.T) {

	assert := assert.New(t)

	client := testClient()

	sensor := events.BridgeSensors(events.BridgeDevice("loremTopic"))[0]

	msg := GenericSensorToHADiscoveryMessage(client, sensor)

	assert.Equal("loremTopic/bridge/state", msg.StateTopic, "bridge state topic")
	assert.Equal(MQTT_PAYLOAD_ONLINE, msg.PayloadOn, "online payload")
	assert.Equal(MQTT_PAYLOAD_OFFLINE, msg.PayloadOff, "offline payload")
}
