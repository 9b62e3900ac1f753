package airthings

// DeviceModel is the static capability descriptor of one Airthings product
// line, resolved from the serial number prefix.
type DeviceModel struct {
	Name         string
	Capabilities DeviceCapabilities
}

// PlaceholderSerialNumber is registered when no serial number is configured.
// A device with this serial never refreshes and serves defaults only.
const PlaceholderSerialNumber = "0000000000"

var deviceModels = map[string]DeviceModel{
	"2900": {
		Name: "Wave",
		Capabilities: DeviceCapabilities{
			Radon: true, Temperature: true, Humidity: true, Battery: true,
		},
	},
	"2920": {
		Name: "Wave Mini",
		Capabilities: DeviceCapabilities{
			Temperature: true, Humidity: true, VOC: true, Mold: true, Battery: true,
		},
	},
	"2930": {
		Name: "Wave Plus",
		Capabilities: DeviceCapabilities{
			Radon: true, Temperature: true, Humidity: true, CO2: true,
			VOC: true, Pressure: true, Battery: true,
		},
	},
	"2950": {
		Name: "Wave Radon",
		Capabilities: DeviceCapabilities{
			Radon: true, Temperature: true, Humidity: true, Battery: true,
		},
	},
	"2960": {
		Name: "View Plus",
		Capabilities: DeviceCapabilities{
			Radon: true, Temperature: true, Humidity: true, CO2: true,
			VOC: true, PM25: true, Pressure: true, Battery: true,
		},
	},
	"2980": {
		Name: "View Pollution",
		Capabilities: DeviceCapabilities{
			Temperature: true, Humidity: true, PM25: true, Battery: true,
		},
	},
	"2989": {
		Name: "View Radon",
		Capabilities: DeviceCapabilities{
			Radon: true, Temperature: true, Humidity: true, Battery: true,
		},
	},
	"3210": {
		Name: "Corentium Home 2",
		Capabilities: DeviceCapabilities{
			Radon: true, Battery: true,
		},
	},
}

// LookupModel resolves the product line from the first four digits of the
// serial number. Unknown prefixes resolve to a generic model without
// capabilities, so only the bridge entities get registered.
func LookupModel(serialNumber string) DeviceModel {
	if len(serialNumber) >= 4 {
		if model, ok := deviceModels[serialNumber[:4]]; ok {
			return model
		}
	}
	return DeviceModel{Name: "Airthings Device"}
}

// LookupCapabilities returns the sensor set of the device model behind a
// serial number.
func LookupCapabilities(serialNumber string) DeviceCapabilities {
	return LookupModel(serialNumber).Capabilities
}
