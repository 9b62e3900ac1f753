package util

import (
	"airthings2mqtt/internal/config"

	"go.uber.org/zap"
)

func LoadTestConfig() config.Config {
	return config.Config{
		LogLevel: zap.DebugLevel,
		Airthings: config.AirthingsConfig{
			ClientId:         "test_client_id",
			ClientSecret:     "test_client_secret",
			SerialNumber:     "2930123456",
			SampleTTLSeconds: 300,
		},
		MQTT: config.MQTTConfig{
			Host:      "localhost",
			Port:      1883,
			BaseTopic: "airthings2mqtt",
		},
		MonitorConfig: config.MonitorConfig{
			PollIntervalMillis: 150000,
		},
		Port: 8080,
	}
}
