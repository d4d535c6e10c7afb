package commands_test

import (
	"testing"

	"stowage/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterShipCommand_ValidInput(t *testing.T) {
	// Act
	cmd, err := commands.NewRegisterShipCommand("MV Aurora", 22.5, 8, 40000)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, "MV Aurora", cmd.Name())
	assert.Equal(t, 22.5, cmd.MaxSpeed())
	assert.Equal(t, 8, cmd.MaxContainerCount())
	assert.Equal(t, 40000.0, cmd.MaxWeightCapacity())
	assert.NotZero(t, cmd.ShipID())
	assert.NoError(t, cmd.ShipID().Validate())
	assert.NoError(t, cmd.Validate())
}

func TestNewRegisterShipCommand_ZeroCapacities(t *testing.T) {
	// Zero slots and zero weight are legal ship parameters
	cmd, err := commands.NewRegisterShipCommand("MV Pontoon", 10, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, cmd.MaxContainerCount())
	assert.Equal(t, 0.0, cmd.MaxWeightCapacity())
}

func TestNewRegisterShipCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name              string
		shipName          string
		maxSpeed          float64
		maxContainerCount int
		maxWeightCapacity float64
		expectedErr       error
	}{
		{
			name:        "empty name",
			shipName:    "",
			maxSpeed:    22.5,
			expectedErr: commands.ErrNameIsRequired,
		},
		{
			name:        "zero max speed",
			shipName:    "MV Aurora",
			maxSpeed:    0,
			expectedErr: commands.ErrMaxSpeedIsInvalid,
		},
		{
			name:        "negative max speed",
			shipName:    "MV Aurora",
			maxSpeed:    -5,
			expectedErr: commands.ErrMaxSpeedIsInvalid,
		},
		{
			name:              "negative container count",
			shipName:          "MV Aurora",
			maxSpeed:          22.5,
			maxContainerCount: -1,
			expectedErr:       commands.ErrMaxContainerCountIsInvalid,
		},
		{
			name:              "negative weight capacity",
			shipName:          "MV Aurora",
			maxSpeed:          22.5,
			maxWeightCapacity: -100,
			expectedErr:       commands.ErrMaxWeightCapacityIsInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			cmd, err := commands.NewRegisterShipCommand(
				tc.shipName, tc.maxSpeed, tc.maxContainerCount, tc.maxWeightCapacity)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Zero(t, cmd)
		})
	}
}

func TestRegisterShipCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.RegisterShipCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegisterShipCommandIsNotConstructed)
}
