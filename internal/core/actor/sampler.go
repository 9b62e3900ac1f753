package actor

import (
	"fmt"
	"time"

	"airthings2mqtt/internal/config"
	"airthings2mqtt/internal/core/domain"
	"airthings2mqtt/internal/core/events"
	. "airthings2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/asynkron/protoactor-go/scheduler"
	"go.uber.org/zap"
)

// SamplerActor polls the airthings actor on a fixed interval and turns each
// snapshot into sensor update events on the event stream.
type SamplerActor struct {
	behavior  actor.Behavior
	stash     *Stash
	scheduler *scheduler.TimerScheduler

	airthingsActor *actor.PID
	config         *config.Config
	eventStream    *eventstream.EventStream

	logger *zap.Logger
}

type samplerTick struct {
}

func NewSamplerActor(config *config.Config, airthingsActor *actor.PID, eventStream *eventstream.EventStream, logger *zap.Logger) *SamplerActor {
	act := &SamplerActor{
		config:         config,
		airthingsActor: airthingsActor,
		behavior:       actor.NewBehavior(),
		stash:          &Stash{},
		logger:         ActorLogger(domain.ACTOR_ID_SAMPLER, logger),
		eventStream:    eventStream,
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *SamplerActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *SamplerActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("sampler@starting started")

		if state.config.MonitorConfig.PollIntervalMillis > 0 {
			state.scheduler = scheduler.NewTimerScheduler(ctx)
			state.scheduler.RequestOnce(time.Duration(state.config.MonitorConfig.PollIntervalMillis)*time.Millisecond, ctx.Self(), samplerTick{})
		}

		PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.airthingsActor, domain.GetDeviceInfoRequest{}, 15*time.Second), func(err error) any {
			return domain.GetDeviceInfoResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: err,
				},
			}
		})
		state.behavior.Become(state.WaitingInfoReceive)
	case *actor.Restarting:
	default:
		state.logger.Debug("sampler@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *SamplerActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("sampler@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_SAMPLER,
			Healthy: true,
			State:   "idle",
		})
	case samplerTick:
		state.logger.Debug("sampler@default tick")
		// get sample snapshot
		PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.airthingsActor, domain.GetSampleSnapshotRequest{}, 15*time.Second), func(err error) any {
			return domain.GetSampleSnapshotResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: err,
				},
			}
		})

		// schedule next tick
		state.scheduler.RequestOnce(time.Duration(state.config.MonitorConfig.PollIntervalMillis)*time.Millisecond, ctx.Self(), samplerTick{})
		state.behavior.BecomeStacked(state.WaitingSampleReceive)
	default:
		state.logger.Debug("sampler@default: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *SamplerActor) WaitingSampleReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetSampleSnapshotResponse:
		if msg.HasResponseError() {
			state.logger.Error("sampler@waiting GetSampleSnapshotResponse error", zap.Error(msg.GetResponseError()))
			state.behavior.UnbecomeStacked()
			state.stash.UnstashAll(ctx)
			return
		}
		state.logger.Debug("sampler@waiting GetSampleSnapshotResponse")
		evs := events.SampleToUpdateEvents(msg.Sample, time.Now())
		for _, ev := range evs {
			state.eventStream.Publish(ev)
		}

		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("sampler@waiting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *SamplerActor) WaitingInfoReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetDeviceInfoResponse:
		if msg.HasResponseError() {
			state.logger.Error("sampler@waitingInfo GetDeviceInfoResponse", zap.Error(msg.GetResponseError()))
			state.behavior.Become(state.DefaultReceive)
			state.stash.UnstashAll(ctx)
			return
		}
		state.logger.Info("sampler@waitingInfo monitoring device",
			zap.String("model", msg.Device.Model), zap.String("serialNumber", msg.Device.SerialNumber))
		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("sampler@waitingInfo: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}
