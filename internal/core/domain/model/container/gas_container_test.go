package container_test

import (
	"testing"

	"stowage/internal/core/domain/model/container"
	"stowage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGasContainer(t *testing.T, notifier container.HazardNotifier) *container.GasContainer {
	t.Helper()
	c, err := container.NewGasContainer(
		createSerialNumber(t, "KON-G-1"), 0, 250, 800, 300, 1000, 12.5, notifier)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestNewGasContainer(t *testing.T) {
	t.Run("should create gas container with valid parameters", func(t *testing.T) {
		c := createGasContainer(t, nil)

		assert.InDelta(t, 12.5, c.Pressure(), 0)
		assert.InDelta(t, 1000, c.MaximumPayload(), 0)
		require.NoError(t, c.Validate())
	})

	t.Run("should return error for negative pressure", func(t *testing.T) {
		c, err := container.NewGasContainer(
			createSerialNumber(t, "KON-G-2"), 0, 250, 800, 300, 1000, -1, nil)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "pressure is invalid")
	})

	t.Run("should accept zero pressure", func(t *testing.T) {
		c, err := container.NewGasContainer(
			createSerialNumber(t, "KON-G-3"), 0, 250, 800, 300, 1000, 0, nil)

		require.NoError(t, err)
		assert.InDelta(t, 0, c.Pressure(), 0)
	})
}

func TestGasContainer_Load(t *testing.T) {
	// maximumPayload = 1000

	t.Run("should load up to the maximum payload", func(t *testing.T) {
		c := createGasContainer(t, nil)

		err := c.Load(900)

		require.NoError(t, err)
		assert.InDelta(t, 900, c.CargoMass(), 0)
	})

	t.Run("should fail above the maximum payload", func(t *testing.T) {
		c := createGasContainer(t, nil)

		err := c.Load(1200)

		require.Error(t, err)
		require.ErrorIs(t, err, container.ErrOverfill)
		assert.InDelta(t, 0, c.CargoMass(), 0)
	})

	t.Run("should never notify from within load", func(t *testing.T) {
		notifier := &recordingNotifier{}
		c := createGasContainer(t, notifier)

		require.NoError(t, c.Load(1000))
		require.Error(t, c.Load(1001))

		assert.Empty(t, notifier.notified)
	})
}

func TestGasContainer_NotifyHazard(t *testing.T) {
	t.Run("should forward to the injected notifier", func(t *testing.T) {
		notifier := &recordingNotifier{}
		c := createGasContainer(t, notifier)

		c.NotifyHazard(c.SerialNumber())

		require.Len(t, notifier.notified, 1)
		assert.True(t, notifier.notified[0].IsEqual(c.SerialNumber()))
	})

	t.Run("should tolerate nil notifier", func(t *testing.T) {
		c := createGasContainer(t, nil)

		c.NotifyHazard(c.SerialNumber()) // must not panic
	})
}
