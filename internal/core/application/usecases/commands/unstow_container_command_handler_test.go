package commands_test

import (
	"testing"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnstowContainerCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	storedShip := createStoredShip(t, 2, 40000)
	storedContainer := createStoredContainer(t, "KON-C-1", 5000)
	require.NoError(t, storedShip.LoadContainer(storedContainer))

	cmd, err := commands.NewUnstowContainerCommand(storedShip.ID(), "KON-C-1")
	require.NoError(t, err)

	mockShipRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipRepository").Return(mockShipRepo).Once()
	mockShipRepo.On("Get", ctx, storedShip.ID()).Return(storedShip, nil).Once()
	mockShipRepo.On("Update", ctx, storedShip).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUnstowContainerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, storedShip.ContainerCount())
	mockShipRepo.AssertExpectations(t)
}

func TestUnstowContainerCommandHandler_Handle_AbsentSerialIsNoOp(t *testing.T) {
	// Arrange
	ctx := t.Context()
	storedShip := createStoredShip(t, 2, 40000)

	cmd, err := commands.NewUnstowContainerCommand(storedShip.ID(), "KON-C-9")
	require.NoError(t, err)

	mockShipRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipRepository").Return(mockShipRepo).Once()
	mockShipRepo.On("Get", ctx, storedShip.ID()).Return(storedShip, nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUnstowContainerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: absence is not an error, the transaction commits, nothing is written
	require.NoError(t, err)
	mockShipRepo.AssertNotCalled(t, "Update", ctx, storedShip)
	mockUoW.AssertExpectations(t)
	mockShipRepo.AssertExpectations(t)
}

func TestUnstowContainerCommandHandler_Handle_ShipNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	storedShip := createStoredShip(t, 2, 40000)

	cmd, err := commands.NewUnstowContainerCommand(storedShip.ID(), "KON-C-1")
	require.NoError(t, err)

	mockShipRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	notFound := errs.NewObjectNotFoundError("ship", storedShip.ID().String())

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipRepository").Return(mockShipRepo).Once()
	mockShipRepo.On("Get", ctx, storedShip.ID()).Return(nil, notFound).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUnstowContainerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
}

func TestUnstowContainerCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	// Arrange
	var cmd commands.UnstowContainerCommand
	mockFactory := new(MockShipUoWFactory)
	handler := commands.NewUnstowContainerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(t.Context(), cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUnstowContainerCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}
