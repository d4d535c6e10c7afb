package ship

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
)

func createSerialNumber(t *testing.T, value string) kernel.SerialNumber {
	t.Helper()
	serialNumber, err := kernel.NewSerialNumber(value)
	require.NoError(t, err)
	return serialNumber
}

func createContainer(t *testing.T, serial string, cargoMass float64) *container.Container {
	t.Helper()
	c, err := container.NewContainer(createSerialNumber(t, serial), cargoMass, 2.6, 2200, 12.0, 5000)
	require.NoError(t, err)
	return c
}

func createShip(t *testing.T, maxContainerCount int, maxWeightCapacity float64) *Ship {
	t.Helper()
	s, err := NewShip(kernel.NewUUID(), "MV Aurora", 22.5, maxContainerCount, maxWeightCapacity)
	require.NoError(t, err)
	return s
}

func TestNewShip(t *testing.T) {
	t.Run("creates empty ship with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		s, err := NewShip(id, "MV Aurora", 22.5, 8, 40000)

		require.NoError(t, err)
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "MV Aurora", s.Name())
		assert.Equal(t, 22.5, s.MaxSpeed())
		assert.Equal(t, 8, s.MaxContainerCount())
		assert.Equal(t, 40000.0, s.MaxWeightCapacity())
		assert.Equal(t, 0, s.ContainerCount())
		assert.Equal(t, 0.0, s.TotalCargoMass())
		assert.NoError(t, s.Validate())
	})

	t.Run("allows zero container capacity", func(t *testing.T) {
		s, err := NewShip(kernel.NewUUID(), "MV Pontoon", 10, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, s.MaxContainerCount())
	})

	t.Run("returns error for empty name", func(t *testing.T) {
		_, err := NewShip(kernel.NewUUID(), "", 22.5, 8, 40000)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("returns error for non-positive max speed", func(t *testing.T) {
		_, err := NewShip(kernel.NewUUID(), "MV Aurora", 0, 8, 40000)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "maxSpeed")
	})

	t.Run("returns error for negative container count", func(t *testing.T) {
		_, err := NewShip(kernel.NewUUID(), "MV Aurora", 22.5, -1, 40000)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "maxContainerCount")
	})

	t.Run("returns error for negative weight capacity", func(t *testing.T) {
		_, err := NewShip(kernel.NewUUID(), "MV Aurora", 22.5, 8, -100)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "maxWeightCapacity")
	})

	t.Run("aggregates multiple validation errors", func(t *testing.T) {
		_, err := NewShip(kernel.NewUUID(), "", -5, -1, -100)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreShip(t *testing.T) {
	t.Run("restores ship with containers in order", func(t *testing.T) {
		first := createContainer(t, "KON-C-1", 100)
		second := createContainer(t, "KON-C-2", 200)

		s, err := RestoreShip(kernel.NewUUID(), "MV Aurora", 22.5, 8, 40000,
			[]container.Loadable{first, second})

		require.NoError(t, err)
		assert.Equal(t, 2, s.ContainerCount())
		assert.Equal(t, 300.0, s.TotalCargoMass())
		restored := s.Containers()
		assert.Same(t, first, restored[0])
		assert.Same(t, second, restored[1])
	})

	t.Run("returns error when containers exceed capacity", func(t *testing.T) {
		first := createContainer(t, "KON-C-1", 100)
		second := createContainer(t, "KON-C-2", 200)

		_, err := RestoreShip(kernel.NewUUID(), "MV Aurora", 22.5, 1, 40000,
			[]container.Loadable{first, second})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})
}

func TestShipLoadContainer(t *testing.T) {
	t.Run("loads container and tracks cargo mass", func(t *testing.T) {
		s := createShip(t, 2, 1000)
		c := createContainer(t, "KON-C-1", 400)

		err := s.LoadContainer(c)

		require.NoError(t, err)
		assert.Equal(t, 1, s.ContainerCount())
		assert.Equal(t, 400.0, s.TotalCargoMass())
	})

	t.Run("rejects load beyond container count", func(t *testing.T) {
		s := createShip(t, 2, 40000)
		require.NoError(t, s.LoadContainer(createContainer(t, "KON-C-1", 100)))
		require.NoError(t, s.LoadContainer(createContainer(t, "KON-C-2", 100)))

		err := s.LoadContainer(createContainer(t, "KON-C-3", 100))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCapacityExceeded)

		var capacityErr *CapacityExceededError
		require.ErrorAs(t, err, &capacityErr)
		assert.True(t, capacityErr.ShipID.IsEqual(s.ID()))
		assert.Equal(t, 2, capacityErr.MaxContainerCount)
		assert.Equal(t, 2, s.ContainerCount())
	})

	t.Run("zero capacity ship rejects first load", func(t *testing.T) {
		s := createShip(t, 0, 40000)

		err := s.LoadContainer(createContainer(t, "KON-C-1", 0))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
		assert.Equal(t, 0, s.ContainerCount())
	})

	t.Run("rejects load beyond weight capacity", func(t *testing.T) {
		s := createShip(t, 8, 1000)
		require.NoError(t, s.LoadContainer(createContainer(t, "KON-C-1", 900)))

		err := s.LoadContainer(createContainer(t, "KON-C-2", 150))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWeightExceeded)

		var weightErr *WeightExceededError
		require.ErrorAs(t, err, &weightErr)
		assert.Equal(t, 900.0, weightErr.CurrentCargoMass)
		assert.Equal(t, 150.0, weightErr.RequestedMass)
		assert.Equal(t, 1000.0, weightErr.MaxWeightCapacity)

		assert.Equal(t, 1, s.ContainerCount())
		assert.Equal(t, 900.0, s.TotalCargoMass())
	})

	t.Run("accepts load exactly at weight capacity", func(t *testing.T) {
		s := createShip(t, 8, 1000)
		require.NoError(t, s.LoadContainer(createContainer(t, "KON-C-1", 900)))

		err := s.LoadContainer(createContainer(t, "KON-C-2", 100))

		require.NoError(t, err)
		assert.Equal(t, 2, s.ContainerCount())
		assert.Equal(t, 1000.0, s.TotalCargoMass())
	})

	t.Run("counts empty containers against container capacity", func(t *testing.T) {
		s := createShip(t, 1, 40000)
		require.NoError(t, s.LoadContainer(createContainer(t, "KON-C-1", 0)))

		err := s.LoadContainer(createContainer(t, "KON-C-2", 0))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("returns error for nil container", func(t *testing.T) {
		s := createShip(t, 8, 40000)

		err := s.LoadContainer(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, 0, s.ContainerCount())
	})

	t.Run("returns error for unconstructed container", func(t *testing.T) {
		s := createShip(t, 8, 40000)

		err := s.LoadContainer(&container.Container{})

		require.Error(t, err)
		assert.ErrorIs(t, err, container.ErrContainerIsNotConstructed)
		assert.Equal(t, 0, s.ContainerCount())
	})

	t.Run("preserves load order", func(t *testing.T) {
		s := createShip(t, 3, 40000)
		first := createContainer(t, "KON-C-1", 10)
		second := createContainer(t, "KON-C-2", 20)
		third := createContainer(t, "KON-C-3", 30)
		require.NoError(t, s.LoadContainer(first))
		require.NoError(t, s.LoadContainer(second))
		require.NoError(t, s.LoadContainer(third))

		onBoard := s.Containers()

		require.Len(t, onBoard, 3)
		assert.Same(t, first, onBoard[0])
		assert.Same(t, second, onBoard[1])
		assert.Same(t, third, onBoard[2])
	})
}

func TestShipRemoveContainer(t *testing.T) {
	t.Run("removes container from collection", func(t *testing.T) {
		s := createShip(t, 2, 40000)
		first := createContainer(t, "KON-C-1", 100)
		second := createContainer(t, "KON-C-2", 200)
		require.NoError(t, s.LoadContainer(first))
		require.NoError(t, s.LoadContainer(second))

		s.RemoveContainer(first)

		assert.Equal(t, 1, s.ContainerCount())
		assert.Equal(t, 200.0, s.TotalCargoMass())
		assert.Same(t, second, s.Containers()[0])
	})

	t.Run("removing absent container is a no-op", func(t *testing.T) {
		s := createShip(t, 2, 40000)
		onBoard := createContainer(t, "KON-C-1", 100)
		stray := createContainer(t, "KON-C-2", 200)
		require.NoError(t, s.LoadContainer(onBoard))

		s.RemoveContainer(stray)

		assert.Equal(t, 1, s.ContainerCount())
	})

	t.Run("frees a slot for a subsequent load", func(t *testing.T) {
		s := createShip(t, 1, 40000)
		first := createContainer(t, "KON-C-1", 100)
		require.NoError(t, s.LoadContainer(first))

		s.RemoveContainer(first)

		assert.NoError(t, s.LoadContainer(createContainer(t, "KON-C-2", 100)))
	})
}

func TestShipUnloadContainer(t *testing.T) {
	t.Run("unloads container by serial number", func(t *testing.T) {
		s := createShip(t, 2, 40000)
		first := createContainer(t, "KON-C-1", 100)
		second := createContainer(t, "KON-C-2", 200)
		require.NoError(t, s.LoadContainer(first))
		require.NoError(t, s.LoadContainer(second))

		unloaded := s.UnloadContainer(createSerialNumber(t, "KON-C-1"))

		assert.Same(t, first, unloaded)
		assert.Equal(t, 1, s.ContainerCount())
		assert.Equal(t, 200.0, s.TotalCargoMass())
	})

	t.Run("returns nil for unknown serial number", func(t *testing.T) {
		s := createShip(t, 2, 40000)
		require.NoError(t, s.LoadContainer(createContainer(t, "KON-C-1", 100)))

		unloaded := s.UnloadContainer(createSerialNumber(t, "KON-C-9"))

		assert.Nil(t, unloaded)
		assert.Equal(t, 1, s.ContainerCount())
	})

	t.Run("unloaded container keeps existing", func(t *testing.T) {
		s := createShip(t, 1, 40000)
		c := createContainer(t, "KON-C-1", 100)
		require.NoError(t, s.LoadContainer(c))

		unloaded := s.UnloadContainer(createSerialNumber(t, "KON-C-1"))

		require.NotNil(t, unloaded)
		assert.Equal(t, 100.0, unloaded.CargoMass())
	})
}

func TestShipFindContainer(t *testing.T) {
	t.Run("finds container without removing it", func(t *testing.T) {
		s := createShip(t, 2, 40000)
		c := createContainer(t, "KON-C-1", 100)
		require.NoError(t, s.LoadContainer(c))

		found := s.FindContainer(createSerialNumber(t, "KON-C-1"))

		assert.Same(t, c, found)
		assert.Equal(t, 1, s.ContainerCount())
	})

	t.Run("returns nil for unknown serial number", func(t *testing.T) {
		s := createShip(t, 2, 40000)

		assert.Nil(t, s.FindContainer(createSerialNumber(t, "KON-C-9")))
	})
}

func TestShipIsEqual(t *testing.T) {
	t.Run("ships with same id are equal", func(t *testing.T) {
		id := kernel.NewUUID()
		first, err := NewShip(id, "MV Aurora", 22.5, 8, 40000)
		require.NoError(t, err)
		second, err := NewShip(id, "MV Borealis", 18, 4, 20000)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("ships with different ids are not equal", func(t *testing.T) {
		first := createShip(t, 8, 40000)
		second := createShip(t, 8, 40000)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("comparison with nil returns false", func(t *testing.T) {
		s := createShip(t, 8, 40000)

		assert.False(t, s.IsEqual(nil))
	})
}

func TestShipValidate(t *testing.T) {
	t.Run("zero value ship is invalid", func(t *testing.T) {
		var s Ship

		err := s.Validate()

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrShipIsNotConstructed))
	})

	t.Run("nil ship is invalid", func(t *testing.T) {
		var s *Ship

		err := s.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrShipIsNotConstructed)
	})
}
