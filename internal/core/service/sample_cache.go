package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"airthings2mqtt/internal/core/port"
	"airthings2mqtt/pkg/airthings"

	"go.uber.org/zap"
)

const DefaultSampleTTL = 300 * time.Second

// SampleCache holds the latest sample snapshot and refreshes it from the
// cloud client once its TTL expires. The lock covers the whole
// check-TTL/fetch/update sequence, so concurrent callers serialize behind a
// single in-flight fetch instead of each triggering their own.
type SampleCache struct {
	mu sync.Mutex

	client       airthings.CloudClient
	serialNumber string
	ttl          time.Duration
	logger       *zap.Logger

	sample    airthings.Sample
	lastFetch time.Time

	// now is replaceable for tests
	now func() time.Time
}

func NewSampleCache(client airthings.CloudClient, serialNumber string, ttl time.Duration, logger *zap.Logger) *SampleCache {
	if ttl <= 0 {
		ttl = DefaultSampleTTL
	}
	return &SampleCache{
		client:       client,
		serialNumber: serialNumber,
		ttl:          ttl,
		logger:       logger,
		now:          time.Now,
	}
}

// GetSnapshot returns the cached sample, refreshing it first when the TTL
// has expired. It never fails: a fetch error is logged and the previous
// snapshot (possibly the empty default) is served unchanged, with the fetch
// timestamp left untouched so the next caller retries.
func (c *SampleCache) GetSnapshot(ctx context.Context) airthings.Sample {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.configured() {
		return c.sample
	}

	if c.now().Sub(c.lastFetch) >= c.ttl {
		sample, err := c.client.GetLatestSample()
		if err != nil {
			c.logger.Error("sample refresh failed, serving last snapshot",
				zap.String("serial_number", c.serialNumber), zap.Error(err))
			return c.sample
		}
		c.sample = *sample
		c.lastFetch = c.now()
		if payload, err := json.Marshal(c.sample); err == nil {
			c.logger.Info("sample refreshed",
				zap.String("serial_number", c.serialNumber), zap.ByteString("sample", payload))
		}
	}

	return c.sample
}

func (c *SampleCache) configured() bool {
	return c.serialNumber != "" && c.serialNumber != airthings.PlaceholderSerialNumber
}

// ensure interface compliance
var _ port.SampleSource = (*SampleCache)(nil)
