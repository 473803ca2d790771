package hopgo

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hopgo/resource"
)

func TestBuilder(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		net, err := NewBuilder(8).Build()
		require.NoError(t, err)
		defer net.Close()

		assert.Equal(t, 8, net.Dimension())
		assert.False(t, net.Trained())
	})

	t.Run("FullConfiguration", func(t *testing.T) {
		mc := &BasicMetricsCollector{}

		net, err := NewBuilder(4).
			Workers(2).
			Normalize(true).
			Logger(NoopLogger()).
			Metrics(mc).
			Resources(resource.Config{MaxConcurrentRecalls: 2}).
			Build()
		require.NoError(t, err)
		defer net.Close()

		require.NoError(t, net.Train(ctx, []float64{1, -1, 1, -1}))

		// Normalized weights scale the energy by 1/N.
		e, err := net.Energy([]float64{1, -1, 1, -1})
		require.NoError(t, err)
		assert.InDelta(t, -1.5, e, 1e-12)

		assert.Equal(t, int64(1), mc.GetStats().TrainCount)
	})

	t.Run("LogLevel", func(t *testing.T) {
		net, err := NewBuilder(4).LogLevel(slog.LevelError).Build()
		require.NoError(t, err)
		defer net.Close()

		require.NoError(t, net.Train(ctx, []float64{1, -1, 1, -1}))
	})

	t.Run("Immutable", func(t *testing.T) {
		base := NewBuilder(4)
		withWorkers := base.Workers(2)

		assert.Equal(t, 0, base.workers)
		assert.Equal(t, 2, withWorkers.workers)
	})

	t.Run("InvalidDimension", func(t *testing.T) {
		_, err := NewBuilder(0).Build()

		var invalid *ErrInvalidDimension
		assert.ErrorAs(t, err, &invalid)
	})
}
