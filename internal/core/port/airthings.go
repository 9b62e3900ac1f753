package port

import (
	"context"

	"airthings2mqtt/pkg/airthings"
)

// SampleSource serves the current sample snapshot, refreshed when stale.
// Implementations never fail: a broken refresh degrades to the last known
// snapshot (or the empty default).
type SampleSource interface {
	GetSnapshot(ctx context.Context) airthings.Sample
}
