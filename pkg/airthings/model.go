package airthings

// Sample is one set of readings fetched from the cloud API. All fields are
// optional: a nil field means the device has no such sensor or the reading
// was unavailable, which is never the same as a zero reading.
// A Sample is immutable once fetched and is always replaced wholesale.
type Sample struct {
	Battery           *float64 `json:"battery,omitempty"`
	CO2               *float64 `json:"co2,omitempty"`
	Humidity          *float64 `json:"humidity,omitempty"`
	Mold              *float64 `json:"mold,omitempty"`
	PM25              *float64 `json:"pm25,omitempty"`
	Pressure          *float64 `json:"pressure,omitempty"`
	RadonShortTermAvg *float64 `json:"radonShortTermAvg,omitempty"`
	Temp              *float64 `json:"temp,omitempty"`
	VOC               *float64 `json:"voc,omitempty"`
	Time              *int64   `json:"time,omitempty"`
}

const (
	defaultBatteryLevel = 100
	lowBatteryThreshold = 10
	co2DetectedLevel    = 1000
	defaultPressure     = 1012
)

// BatteryLevel returns the battery charge in %, or 100 when unreported so a
// missing reading never shows up as an empty battery.
func (s Sample) BatteryLevel() float64 {
	if s.Battery == nil {
		return defaultBatteryLevel
	}
	return *s.Battery
}

// BatteryLow reports whether the battery charge is at or below 10%.
func (s Sample) BatteryLow() bool {
	return s.BatteryLevel() <= lowBatteryThreshold
}

// CO2Level returns the CO2 concentration in ppm, or 0 when unreported.
func (s Sample) CO2Level() float64 {
	if s.CO2 == nil {
		return 0
	}
	return *s.CO2
}

// CO2Detected reports whether the CO2 concentration reached 1000 ppm.
// An unreported reading counts as not detected.
func (s Sample) CO2Detected() bool {
	return s.CO2 != nil && *s.CO2 >= co2DetectedLevel
}

// RelativeHumidity returns the relative humidity in %, or 0 when unreported.
func (s Sample) RelativeHumidity() float64 {
	if s.Humidity == nil {
		return 0
	}
	return *s.Humidity
}

// MoldLevel returns the mold risk index (0-10), or 0 when unreported.
func (s Sample) MoldLevel() float64 {
	if s.Mold == nil {
		return 0
	}
	return *s.Mold
}

// PM25Level returns the fine particulate matter density in ug/m3, or 0 when
// unreported.
func (s Sample) PM25Level() float64 {
	if s.PM25 == nil {
		return 0
	}
	return *s.PM25
}

// RadonLevel returns the short term radon average in Bq/m3, or 0 when
// unreported.
func (s Sample) RadonLevel() float64 {
	if s.RadonShortTermAvg == nil {
		return 0
	}
	return *s.RadonShortTermAvg
}

// AirPressure returns the atmospheric pressure in mBar, or 1012 when
// unreported.
func (s Sample) AirPressure() float64 {
	if s.Pressure == nil {
		return defaultPressure
	}
	return *s.Pressure
}

// Temperature returns the air temperature in degrees Celsius. There is no
// meaningful substitute for a missing temperature, so absence is reported
// as nil rather than a default.
func (s Sample) Temperature() *float64 {
	return s.Temp
}

// DeviceInfo describes one registered Airthings device.
type DeviceInfo struct {
	SerialNumber string
	Model        string
	Name         string
}

// DeviceCapabilities lists which sensors a device model carries. The flags
// only decide which entities get registered: readings are still checked for
// presence at runtime regardless of capabilities.
type DeviceCapabilities struct {
	Radon       bool
	Temperature bool
	Humidity    bool
	CO2         bool
	VOC         bool
	PM25        bool
	Pressure    bool
	Mold        bool
	Battery     bool
}

// AirQuality reports whether the device has at least one factor that feeds
// the composite air quality rating.
func (c DeviceCapabilities) AirQuality() bool {
	return c.Radon || c.Humidity || c.CO2 || c.VOC || c.PM25 || c.Mold
}

type deviceResponse struct {
	Id         string   `json:"id"`
	DeviceType string   `json:"deviceType"`
	Sensors    []string `json:"sensors"`
	Segment    struct {
		Name string `json:"name"`
	} `json:"segment"`
}

type latestSamplesResponse struct {
	Data Sample `json:"data"`
}
