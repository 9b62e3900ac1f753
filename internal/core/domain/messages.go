package domain

import "airthings2mqtt/pkg/airthings"

type GetDeviceInfoRequest struct {
	ActorRequestMixIn
}

type GetDeviceInfoResponse struct {
	ActorResponseMixIn
	Device       *airthings.DeviceInfo
	Capabilities airthings.DeviceCapabilities
}

type GetSampleSnapshotRequest struct {
	ActorRequestMixIn
}

type GetSampleSnapshotResponse struct {
	ActorResponseMixIn
	Sample airthings.Sample
}

type PublishMessageRequest struct {
	ActorRequestMixIn
	Topic   string
	Payload string
	Retain  bool
}

type PublishMessageResponse struct {
	ActorResponseMixIn
}

type PublishSensorUpdateRequest struct {
	ActorRequestMixIn
	Retain bool
	Event  SensorUpdateEvent
}

type PublishSensorUpdateResponse struct {
	ActorResponseMixIn
}

type PublishDiscoveryRequest struct {
	ActorRequestMixIn
	Sensors []GenericSensor
}

type PublishDiscoveryResponse struct {
	ActorResponseMixIn
}
