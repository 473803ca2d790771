package hopgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordTrain is called after each training run.
	// patterns is the size of the trained set, duration the total time
	// taken, err nil if successful.
	RecordTrain(patterns int, duration time.Duration, err error)

	// RecordRecall is called after each recall run.
	// steps is the number of update steps executed, converged whether a
	// fixed point was reached.
	RecordRecall(steps int, converged bool, duration time.Duration, err error)

	// RecordBatchRecall is called after each batch recall.
	// count is the number of states attempted, failed the number that
	// returned an error.
	RecordBatchRecall(count, failed int, duration time.Duration)

	// RecordSnapshot is called after each snapshot save or load.
	RecordSnapshot(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTrain(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordRecall(int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatchRecall(int, int, time.Duration)    {}
func (NoopMetricsCollector) RecordSnapshot(time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TrainCount        atomic.Int64
	TrainErrors       atomic.Int64
	TrainTotalNanos   atomic.Int64
	RecallCount       atomic.Int64
	RecallErrors      atomic.Int64
	RecallConverged   atomic.Int64
	RecallTotalSteps  atomic.Int64
	RecallTotalNanos  atomic.Int64
	BatchRecallCount  atomic.Int64
	BatchRecallItems  atomic.Int64
	BatchRecallFailed atomic.Int64
	SnapshotCount     atomic.Int64
	SnapshotErrors    atomic.Int64
}

// RecordTrain implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrain(patterns int, duration time.Duration, err error) {
	b.TrainCount.Add(1)
	b.TrainTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TrainErrors.Add(1)
	}
}

// RecordRecall implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRecall(steps int, converged bool, duration time.Duration, err error) {
	b.RecallCount.Add(1)
	b.RecallTotalSteps.Add(int64(steps))
	b.RecallTotalNanos.Add(duration.Nanoseconds())
	if converged {
		b.RecallConverged.Add(1)
	}
	if err != nil {
		b.RecallErrors.Add(1)
	}
}

// RecordBatchRecall implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchRecall(count, failed int, duration time.Duration) {
	b.BatchRecallCount.Add(1)
	b.BatchRecallItems.Add(int64(count))
	b.BatchRecallFailed.Add(int64(failed))
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TrainCount:        b.TrainCount.Load(),
		TrainErrors:       b.TrainErrors.Load(),
		TrainAvgNanos:     avg(b.TrainTotalNanos.Load(), b.TrainCount.Load()),
		RecallCount:       b.RecallCount.Load(),
		RecallErrors:      b.RecallErrors.Load(),
		RecallConverged:   b.RecallConverged.Load(),
		RecallAvgSteps:    avg(b.RecallTotalSteps.Load(), b.RecallCount.Load()),
		RecallAvgNanos:    avg(b.RecallTotalNanos.Load(), b.RecallCount.Load()),
		BatchRecallCount:  b.BatchRecallCount.Load(),
		BatchRecallItems:  b.BatchRecallItems.Load(),
		BatchRecallFailed: b.BatchRecallFailed.Load(),
		SnapshotCount:     b.SnapshotCount.Load(),
		SnapshotErrors:    b.SnapshotErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TrainCount        int64
	TrainErrors       int64
	TrainAvgNanos     int64
	RecallCount       int64
	RecallErrors      int64
	RecallConverged   int64
	RecallAvgSteps    int64
	RecallAvgNanos    int64
	BatchRecallCount  int64
	BatchRecallItems  int64
	BatchRecallFailed int64
	SnapshotCount     int64
	SnapshotErrors    int64
}
