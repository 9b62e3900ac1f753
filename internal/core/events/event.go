package events

import (
	"time"

	"airthings2mqtt/internal/core/domain"
	"airthings2mqtt/internal/core/service"
	"airthings2mqtt/pkg/airthings"
)

// SampleToUpdateEvents derives the per-entity state updates of one snapshot.
// Battery diagnostics always publish (defaulting to a full battery). Every
// other entity publishes only while the snapshot is fresh, so a dead sensor
// stops updating instead of republishing stale readings as current; within a
// fresh snapshot, readings with a documented default publish that default
// when the field is absent, and temperature (which has none) is skipped.
func SampleToUpdateEvents(sample airthings.Sample, now time.Time) []any {
	var events []any

	events = append(events, domain.FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_BATTERY,
		},
		Value:    sample.BatteryLevel(),
		Decimals: 0,
	})
	events = append(events, domain.BinarySensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_BATTERY_LOW,
		},
		Value: sample.BatteryLow(),
	})

	if !service.Fresh(sample, now) {
		return events
	}

	events = append(events, domain.TextSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_AIR_QUALITY,
		},
		Value: service.Classify(sample).String(),
	})

	if temp := sample.Temperature(); temp != nil {
		events = append(events, domain.FloatSensorUpdateEvent{
			SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
				Id: SENSOR_ID_TEMPERATURE,
			},
			Value:    *temp,
			Decimals: 1,
		})
	}

	events = append(events, domain.FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_HUMIDITY,
		},
		Value:    sample.RelativeHumidity(),
		Decimals: 1,
	})

	events = append(events, domain.FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_CO2,
		},
		Value:    sample.CO2Level(),
		Decimals: 0,
	})
	events = append(events, domain.BinarySensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_CO2_DETECTED,
		},
		Value: sample.CO2Detected(),
	})

	events = append(events, domain.FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_PM25,
		},
		Value:    sample.PM25Level(),
		Decimals: 0,
	})

	events = append(events, domain.FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_RADON,
		},
		Value:    sample.RadonLevel(),
		Decimals: 0,
	})

	events = append(events, domain.FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_VOC_DENSITY,
		},
		Value:    service.VOCDensity(sample),
		Decimals: 2,
	})

	events = append(events, domain.FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_PRESSURE,
		},
		Value:    sample.AirPressure(),
		Decimals: 1,
	})

	events = append(events, domain.FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: SENSOR_ID_MOLD,
		},
		Value:    sample.MoldLevel(),
		Decimals: 0,
	})

	return events
}
