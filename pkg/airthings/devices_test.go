package airthings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupModelBySerialPrefix(t *testing.T) {

	assert := assert.New(t)

	wavePlus := LookupModel("2930123456")
	assert.Equal("Wave Plus", wavePlus.Name)
	assert.True(wavePlus.Capabilities.CO2)
	assert.True(wavePlus.Capabilities.Radon)
	assert.False(wavePlus.Capabilities.PM25, "Wave Plus has no particle sensor")

	viewPlus := LookupModel("2960123456")
	assert.Equal("View Plus", viewPlus.Name)
	assert.True(viewPlus.Capabilities.PM25)

	waveMini := LookupModel("2920123456")
	assert.True(waveMini.Capabilities.Mold)
	assert.False(waveMini.Capabilities.Radon)
}

func TestLookupModelUnknownPrefix(t *testing.T) {

	assert := assert.New(t)

	unknown := LookupModel("1234000000")
	assert.Equal("Airthings Device", unknown.Name)
	assert.False(unknown.Capabilities.AirQuality(), "no factors registered for unknown models")

	short := LookupModel("29")
	assert.Equal("Airthings Device", short.Name)
}

func TestCapabilitiesAirQuality(t *testing.T) {

	assert := assert.New(t)

	assert.True(DeviceCapabilities{CO2: true}.AirQuality())
	assert.True(DeviceCapabilities{Mold: true}.AirQuality())
	assert.False(DeviceCapabilities{Temperature: true, Pressure: true, Battery: true}.AirQuality(),
		"temperature and pressure do not feed the rating")
}
