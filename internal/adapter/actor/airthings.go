package actor

import (
	"context"
	"fmt"
	"time"

	"airthings2mqtt/internal/core/domain"
	"airthings2mqtt/internal/core/service"
	"airthings2mqtt/internal/util/actorutil"
	"airthings2mqtt/pkg/airthings"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/reugn/go-quartz/logger"
	"go.uber.org/zap"
)

const (
	AIRTHINGS_ACTOR_ID = "airthings"
)

// AirthingsActor owns the cloud client and the sample cache. Snapshot and
// device info requests run as background tasks so a slow API call never
// blocks the mailbox.
type AirthingsActor struct {
	behavior actor.Behavior
	stash    *actorutil.Stash
	client   airthings.CloudClient
	cache    *service.SampleCache
	logger   *zap.Logger
}

type backgroundTaskResult struct {
	message any
	replyTo *actor.PID
}

func NewAirthingsActor(client airthings.CloudClient, cache *service.SampleCache, logger *zap.Logger) *AirthingsActor {
	act := &AirthingsActor{
		client:   client,
		cache:    cache,
		behavior: actor.NewBehavior(),
		stash:    &actorutil.Stash{},
		logger:   actorutil.ActorLogger("airthings", logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *AirthingsActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *AirthingsActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("airthings@starting started")
		if err := state.client.Open(); err != nil {
			panic(err)
		}
		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	case *actor.Restarting:
		_ = state.client.Close()
	default:
		state.logger.Debug("airthings@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *AirthingsActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("airthings@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      AIRTHINGS_ACTOR_ID,
			Healthy: true,
			State:   "idle",
		})
	case domain.GetDeviceInfoRequest:
		state.logger.Debug("airthings@default: GetDeviceInfoRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)

		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, state.getDeviceInfo),
			mapTaskResult[domain.GetDeviceInfoResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.GetDeviceInfoResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(10 * time.Second).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	case domain.GetSampleSnapshotRequest:
		state.logger.Debug("airthings@default: GetSampleSnapshotRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)

		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, state.getSampleSnapshot),
			mapTaskResult[domain.GetSampleSnapshotResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.GetSampleSnapshotResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(10 * time.Second).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	case *actor.Stopping:
		_ = state.client.Close()
	default:
		state.logger.Debug("airthings@default default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

func (state *AirthingsActor) WaitingCloud(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case backgroundTaskResult:
		state.logger.Debug("airthings@waitingCloud backgroundTaskResult", zap.String("type", fmt.Sprintf("%T", msg.message)))
		ctx.Send(msg.replyTo, msg.message)
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	case *actor.Stopping:
		_ = state.client.Close()
	default:
		state.logger.Debug("airthings@waitingCloud stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (a *AirthingsActor) getDeviceInfo() (*domain.GetDeviceInfoResponse, error) {
	info, err := a.client.GetInfo()
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	return &domain.GetDeviceInfoResponse{
		Device:       info,
		Capabilities: airthings.LookupCapabilities(info.SerialNumber),
	}, nil
}

func (a *AirthingsActor) getSampleSnapshot() (*domain.GetSampleSnapshotResponse, error) {
	sample := a.cache.GetSnapshot(context.Background())
	return &domain.GetSampleSnapshotResponse{
		Sample: sample,
	}, nil
}

func mapTaskResult[T any](sender *actor.PID) func(t *T) *backgroundTaskResult {
	return func(t *T) *backgroundTaskResult {
		return &backgroundTaskResult{
			message: *t,
			replyTo: sender,
		}
	}
}
