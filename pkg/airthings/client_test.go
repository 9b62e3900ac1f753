package airthings

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAPIServer(t *testing.T, serial string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc(fmt.Sprintf("/devices/%s", serial), func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         serial,
			"deviceType": "WAVE_PLUS",
			"segment":    map[string]any{"name": "Bedroom"},
		})
	})
	mux.HandleFunc(fmt.Sprintf("/devices/%s/latest-samples", serial), func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"battery": 95,
				"co2":     712.0,
				"temp":    22.1,
				"time":    1700000123,
			},
		})
	})
	return httptest.NewServer(mux)
}

func TestCloudClientGetLatestSample(t *testing.T) {

	require := require.New(t)

	serial := "2930999999"
	server := testAPIServer(t, serial)
	defer server.Close()

	client := CreateCloudClient("id", "secret", serial, 5*time.Second,
		zap.NewNop(), server.URL, server.URL+"/token")
	require.NoError(client.Open())
	defer client.Close()

	sample, err := client.GetLatestSample()
	require.NoError(err)
	require.NotNil(sample.CO2)
	require.EqualValues(712, *sample.CO2)
	require.Nil(sample.Humidity, "absent field stays nil")
	require.NotNil(sample.Time)
}

func TestCloudClientGetInfo(t *testing.T) {

	require := require.New(t)

	serial := "2930999999"
	server := testAPIServer(t, serial)
	defer server.Close()

	client := CreateCloudClient("id", "secret", serial, 5*time.Second,
		zap.NewNop(), server.URL, server.URL+"/token")

	info, err := client.GetInfo()
	require.NoError(err)
	require.Equal("Wave Plus", info.Model)
	require.Equal("Bedroom", info.Name)
	require.Equal(serial, info.SerialNumber)
}

func TestCloudClientErrorStatus(t *testing.T) {

	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/token" {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token": "test-token", "token_type": "Bearer", "expires_in": 3600,
			})
			return
		}
		http.Error(w, `{"error":"DEVICE_NOT_FOUND"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := CreateCloudClient("id", "secret", "2930999999", 5*time.Second,
		zap.NewNop(), server.URL, server.URL+"/token")

	_, err := client.GetLatestSample()
	assert.Error(err)
	assert.Contains(err.Error(), "404")
}
