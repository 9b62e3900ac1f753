package actor

import (
	"testing"
	"time"

	"airthings2mqtt/internal/core/domain"
	"airthings2mqtt/internal/core/service"
	"airthings2mqtt/internal/util/actorutil"
	"airthings2mqtt/pkg/airthings"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetDeviceInfoAirthingsActor(t *testing.T) {

	assert := assert.New(t)

	client, err := airthings.CreateTestCloudClient()
	if err != nil {
		t.Error(err)
		return
	}

	logger := zap.Must(zap.NewDevelopment())

	cache := service.NewSampleCache(client, "2930000001", 300*time.Second, logger)

	as := actorutil.NewActorSystemWithZapLogger(logger)

	context := as.Root

	props := actor.PropsFromProducer(func() actor.Actor { return NewAirthingsActor(client, cache, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	msg := domain.GetDeviceInfoRequest{}
	result, err := context.RequestFuture(pid, msg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.GetDeviceInfoResponse)

	assert.Equal("2930000001", resp.Device.SerialNumber, "device serial number")
	assert.Equal("Wave Plus", resp.Device.Model, "device model")
	assert.True(resp.Capabilities.Radon, "radon capability")
	assert.True(resp.Capabilities.CO2, "co2 capability")
	assert.False(resp.Capabilities.PM25, "pm25 capability")

	context.Stop(pid)

	as.Shutdown()
}

func TestGetSampleSnapshotAirthingsActor(t *testing.T) {

	assert := assert.New(t)

	client, err := airthings.CreateTestCloudClient()
	if err != nil {
		t.Error(err)
		return
	}

	logger := zap.Must(zap.NewDevelopment())

	cache := service.NewSampleCache(client, "2930000001", 300*time.Second, logger)

	as := actorutil.NewActorSystemWithZapLogger(logger)

	context := as.Root

	props := actor.PropsFromProducer(func() actor.Actor { return NewAirthingsActor(client, cache, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	msg := domain.GetSampleSnapshotRequest{}
	result, err := context.RequestFuture(pid, msg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.GetSampleSnapshotResponse)

	assert.False(resp.HasResponseError(), "no response error")
	assert.NotNil(resp.Sample.CO2, "co2 reading present")
	assert.Equal(92.0, resp.Sample.BatteryLevel(), "battery level")

	context.Stop(pid)

	as.Shutdown()
}
