package events

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"airthings2mqtt/internal/core/domain"
	"airthings2mqtt/pkg/airthings"

	"github.com/carlmjohnson/versioninfo"
)

const (
	SENSOR_ID_BRIDGE_STATE = "bridge"
	SENSOR_ID_AIR_QUALITY  = "air_quality"
	SENSOR_ID_TEMPERATURE  = "temperature"
	SENSOR_ID_HUMIDITY     = "humidity"
	SENSOR_ID_CO2          = "co2"
	SENSOR_ID_CO2_DETECTED = "co2_detected"
	SENSOR_ID_PM25         = "pm25"
	SENSOR_ID_RADON        = "radon_short_term_avg"
	SENSOR_ID_VOC_DENSITY  = "voc_density"
	SENSOR_ID_PRESSURE     = "pressure"
	SENSOR_ID_MOLD         = "mold"
	SENSOR_ID_BATTERY      = "battery"
	SENSOR_ID_BATTERY_LOW  = "battery_low"

	STATE_CLASS_MEASUREMENT = "measurement"

	DEVICE_CLASS_TEMPERATURE  = "temperature"
	DEVICE_CLASS_HUMIDITY     = "humidity"
	DEVICE_CLASS_CO2          = "carbon_dioxide"
	DEVICE_CLASS_GAS          = "gas"
	DEVICE_CLASS_PM25         = "pm25"
	DEVICE_CLASS_VOC          = "volatile_organic_compounds"
	DEVICE_CLASS_PRESSURE     = "atmospheric_pressure"
	DEVICE_CLASS_BATTERY      = "battery"
	DEVICE_CLASS_CONNECTIVITY = "connectivity"

	ENTITY_CLASS_DIAGNOSTIC = "diagnostic"

	SENSOR_TYPE_SENSOR = "sensor"
	SENSOR_TYPE_BINARY = "binary_sensor"
)

func BridgeDevice(baseTopic string) domain.Device {
	return domain.Device{
		Id:           fmt.Sprintf("airthings2mqtt_bridge_%s", md5HashShort(baseTopic)),
		Manufacturer: "airthings2mqtt",
		Model:        "Airthings2MQTT",
		Version:      versioninfo.Short(),
		Name:         fmt.Sprintf("Airthings2MQTT %s", md5HashShort(baseTopic)),
	}
}

func MonitorDevice(info *airthings.DeviceInfo) domain.Device {
	name := info.Name
	if name == "" {
		name = fmt.Sprintf("%s %s", info.Model, md5HashShort(info.SerialNumber))
	}
	return domain.Device{
		Id:           fmt.Sprintf("airthings_%s", md5HashShort(info.SerialNumber)),
		Manufacturer: "Airthings",
		Model:        info.Model,
		Name:         name,
	}
}

func IdDevice(device domain.Device) domain.Device {
	return domain.Device{
		Id:   device.Id,
		Name: device.Name,
	}
}

// MonitorSensors is the registration table: one entity per capability the
// device model actually carries. The derivation engine still checks field
// presence at runtime regardless of what was registered here.
func MonitorSensors(monitorDevice domain.Device, caps airthings.DeviceCapabilities) []domain.GenericSensor {

	var sensors []domain.GenericSensor

	if caps.AirQuality() {
		sensors = append(sensors, domain.GenericSensor{
			Device:     monitorDevice,
			Id:         SENSOR_ID_AIR_QUALITY,
			SensorType: SENSOR_TYPE_SENSOR,
			Name:       "Air quality",
			Icon:       "mdi:air-filter",
			UniqueId:   uniqueId(monitorDevice.Id, SENSOR_ID_AIR_QUALITY),
		})
	}

	if caps.Temperature {
		sensors = append(sensors, domain.GenericSensor{
			Device:            monitorDevice,
			Id:                SENSOR_ID_TEMPERATURE,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "Temperature",
			StateClass:        STATE_CLASS_MEASUREMENT,
			DeviceClass:       DEVICE_CLASS_TEMPERATURE,
			UnitOfMeasurement: "°C",
			UniqueId:          uniqueId(monitorDevice.Id, SENSOR_ID_TEMPERATURE),
		})
	}

	if caps.Humidity {
		sensors = append(sensors, domain.GenericSensor{
			Device:            monitorDevice,
			Id:                SENSOR_ID_HUMIDITY,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "Humidity",
			StateClass:        STATE_CLASS_MEASUREMENT,
			DeviceClass:       DEVICE_CLASS_HUMIDITY,
			UnitOfMeasurement: "%",
			UniqueId:          uniqueId(monitorDevice.Id, SENSOR_ID_HUMIDITY),
		})
	}

	if caps.CO2 {
		sensors = append(sensors, domain.GenericSensor{
			Device:            monitorDevice,
			Id:                SENSOR_ID_CO2,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "CO2",
			StateClass:        STATE_CLASS_MEASUREMENT,
			DeviceClass:       DEVICE_CLASS_CO2,
			UnitOfMeasurement: "ppm",
			UniqueId:          uniqueId(monitorDevice.Id, SENSOR_ID_CO2),
		})
		sensors = append(sensors, domain.GenericSensor{
			Device:      monitorDevice,
			Id:          SENSOR_ID_CO2_DETECTED,
			SensorType:  SENSOR_TYPE_BINARY,
			Name:        "CO2 detected",
			DeviceClass: DEVICE_CLASS_GAS,
			UniqueId:    uniqueId(monitorDevice.Id, SENSOR_ID_CO2_DETECTED),
		})
	}

	if caps.PM25 {
		sensors = append(sensors, domain.GenericSensor{
			Device:            monitorDevice,
			Id:                SENSOR_ID_PM25,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "PM2.5",
			StateClass:        STATE_CLASS_MEASUREMENT,
			DeviceClass:       DEVICE_CLASS_PM25,
			UnitOfMeasurement: "µg/m³",
			UniqueId:          uniqueId(monitorDevice.Id, SENSOR_ID_PM25),
		})
	}

	if caps.Radon {
		sensors = append(sensors, domain.GenericSensor{
			Device:            monitorDevice,
			Id:                SENSOR_ID_RADON,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "Radon short term average",
			StateClass:        STATE_CLASS_MEASUREMENT,
			UnitOfMeasurement: "Bq/m³",
			Icon:              "mdi:radioactive",
			UniqueId:          uniqueId(monitorDevice.Id, SENSOR_ID_RADON),
		})
	}

	if caps.VOC {
		sensors = append(sensors, domain.GenericSensor{
			Device:            monitorDevice,
			Id:                SENSOR_ID_VOC_DENSITY,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "VOC density",
			StateClass:        STATE_CLASS_MEASUREMENT,
			DeviceClass:       DEVICE_CLASS_VOC,
			UnitOfMeasurement: "µg/m³",
			UniqueId:          uniqueId(monitorDevice.Id, SENSOR_ID_VOC_DENSITY),
		})
	}

	if caps.Pressure {
		sensors = append(sensors, domain.GenericSensor{
			Device:            monitorDevice,
			Id:                SENSOR_ID_PRESSURE,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "Air pressure",
			StateClass:        STATE_CLASS_MEASUREMENT,
			DeviceClass:       DEVICE_CLASS_PRESSURE,
			UnitOfMeasurement: "mbar",
			UniqueId:          uniqueId(monitorDevice.Id, SENSOR_ID_PRESSURE),
		})
	}

	if caps.Mold {
		sensors = append(sensors, domain.GenericSensor{
			Device:     monitorDevice,
			Id:         SENSOR_ID_MOLD,
			SensorType: SENSOR_TYPE_SENSOR,
			Name:       "Mold risk",
			StateClass: STATE_CLASS_MEASUREMENT,
			Icon:       "mdi:mushroom-outline",
			UniqueId:   uniqueId(monitorDevice.Id, SENSOR_ID_MOLD),
		})
	}

	if caps.Battery {
		sensors = append(sensors, domain.GenericSensor{
			Device:            monitorDevice,
			Id:                SENSOR_ID_BATTERY,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "Battery",
			StateClass:        STATE_CLASS_MEASUREMENT,
			DeviceClass:       DEVICE_CLASS_BATTERY,
			UnitOfMeasurement: "%",
			EntityCategory:    ENTITY_CLASS_DIAGNOSTIC,
			UniqueId:          uniqueId(monitorDevice.Id, SENSOR_ID_BATTERY),
		})
		sensors = append(sensors, domain.GenericSensor{
			Device:         monitorDevice,
			Id:             SENSOR_ID_BATTERY_LOW,
			SensorType:     SENSOR_TYPE_BINARY,
			Name:           "Battery low",
			DeviceClass:    DEVICE_CLASS_BATTERY,
			EntityCategory: ENTITY_CLASS_DIAGNOSTIC,
			UniqueId:       uniqueId(monitorDevice.Id, SENSOR_ID_BATTERY_LOW),
		})
	}

	return sensors
}

func BridgeSensors(bridgeDevice domain.Device) []domain.GenericSensor {

	var sensors []domain.GenericSensor

	sensors = append(sensors, domain.GenericSensor{
		Device:         bridgeDevice,
		Id:             SENSOR_ID_BRIDGE_STATE,
		SensorType:     SENSOR_TYPE_BINARY,
		Name:           "Connection state",
		DeviceClass:    DEVICE_CLASS_CONNECTIVITY,
		EntityCategory: ENTITY_CLASS_DIAGNOSTIC,
		UniqueId:       uniqueId(bridgeDevice.Id, SENSOR_ID_BRIDGE_STATE),
	})

	return sensors
}

func uniqueId(baseId, id string) string {
	return fmt.Sprintf("uid_%s_%s", baseId, id)
}

func md5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

func md5HashShort(text string) string {
	hash := md5Hash(text)
	return hash[0:8]
}
