package airthings

func CreateTestCloudClient() (CloudClient, error) {
	return &TestCloudClient{}, nil
}

// TestCloudClient mimics a Wave Plus with healthy readings.
type TestCloudClient struct {
	Samples  int
	InfoErr  error
	FetchErr error
}

func (c *TestCloudClient) Open() error {
	return nil
}

func (c *TestCloudClient) Close() error {
	return nil
}

func (c *TestCloudClient) GetInfo() (*DeviceInfo, error) {
	if c.InfoErr != nil {
		return nil, c.InfoErr
	}
	return &DeviceInfo{
		SerialNumber: "2930000001",
		Model:        "Wave Plus",
		Name:         "Living Room",
	}, nil
}

func (c *TestCloudClient) GetLatestSample() (*Sample, error) {
	if c.FetchErr != nil {
		return nil, c.FetchErr
	}
	c.Samples++
	return &Sample{
		Battery:           f64(92),
		CO2:               f64(640),
		Humidity:          f64(41.5),
		Pressure:          f64(1001.3),
		RadonShortTermAvg: f64(38),
		Temp:              f64(21.8),
		VOC:               f64(120),
		Time:              i64(1700000000),
	}, nil
}

func f64(value float64) *float64 {
	return &value
}

func i64(value int64) *int64 {
	return &value
}
