package airthings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	DefaultAPIBaseURL = "https://ext-api.airthings.com/v1"
	DefaultTokenURL   = "https://accounts-api.airthings.com/v1/token"

	scopeCurrentValues = "read:device:current_values"
)

// CloudClient reads one device through the Airthings consumer API.
type CloudClient interface {
	Open() error
	Close() error
	GetInfo() (*DeviceInfo, error)
	GetLatestSample() (*Sample, error)
}

type httpCloudClient struct {
	baseURL      string
	serialNumber string
	httpClient   *http.Client
	logger       *zap.Logger
}

// CreateCloudClient builds a CloudClient authenticated with OAuth2 client
// credentials. Token refresh is handled by the underlying token source.
func CreateCloudClient(clientId, clientSecret, serialNumber string, timeout time.Duration,
	logger *zap.Logger, baseURL string, tokenURL string) CloudClient {

	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	ccfg := clientcredentials.Config{
		ClientID:     clientId,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{scopeCurrentValues},
	}
	httpClient := ccfg.Client(context.Background())
	httpClient.Timeout = timeout

	return &httpCloudClient{
		baseURL:      baseURL,
		serialNumber: serialNumber,
		httpClient:   httpClient,
		logger:       logger,
	}
}

func (c *httpCloudClient) Open() error {
	return nil
}

func (c *httpCloudClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *httpCloudClient) GetInfo() (*DeviceInfo, error) {
	var resp deviceResponse
	if err := c.getJSON(fmt.Sprintf("%s/devices/%s", c.baseURL, c.serialNumber), &resp); err != nil {
		return nil, err
	}
	return &DeviceInfo{
		SerialNumber: c.serialNumber,
		Model:        LookupModel(c.serialNumber).Name,
		Name:         resp.Segment.Name,
	}, nil
}

func (c *httpCloudClient) GetLatestSample() (*Sample, error) {
	var resp latestSamplesResponse
	if err := c.getJSON(fmt.Sprintf("%s/devices/%s/latest-samples", c.baseURL, c.serialNumber), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *httpCloudClient) getJSON(url string, target any) error {
	res, err := c.httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("airthings api request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("airthings api returned %d: %s", res.StatusCode, string(body))
	}
	if err := json.NewDecoder(res.Body).Decode(target); err != nil {
		return fmt.Errorf("airthings api response decode failed: %w", err)
	}
	return nil
}
