package commands_test

import (
	"testing"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnstowContainerCommand_ValidInput(t *testing.T) {
	// Arrange
	shipID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewUnstowContainerCommand(shipID, "KON-C-1")

	// Assert
	require.NoError(t, err)
	assert.True(t, cmd.ShipID().IsEqual(shipID))
	assert.Equal(t, "KON-C-1", cmd.SerialNumber().String())
	assert.NoError(t, cmd.Validate())
}

func TestNewUnstowContainerCommand_InvalidInput(t *testing.T) {
	t.Run("zero ship id", func(t *testing.T) {
		cmd, err := commands.NewUnstowContainerCommand(kernel.UUID{}, "KON-C-1")

		require.Error(t, err)
		assert.Zero(t, cmd)
	})

	t.Run("empty serial number", func(t *testing.T) {
		cmd, err := commands.NewUnstowContainerCommand(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Zero(t, cmd)
	})
}

func TestUnstowContainerCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.UnstowContainerCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUnstowContainerCommandIsNotConstructed)
}
