package commands_test

import (
	"testing"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmptyContainerCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := createStoredContainer(t, "KON-C-1", 5000)
	require.NoError(t, stored.Load(300))

	cmd, err := commands.NewEmptyContainerCommand("KON-C-1")
	require.NoError(t, err)

	mockRepo := new(MockContainerRepository)
	mockUoW := new(MockContainerUoW)
	mockFactory := new(MockContainerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ContainerRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, cmd.SerialNumber()).Return(stored, nil).Once(),
		mockRepo.On("Update", ctx, stored).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewEmptyContainerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.CargoMass())
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestEmptyContainerCommandHandler_Handle_ContainerNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewEmptyContainerCommand("KON-C-9")
	require.NoError(t, err)

	mockRepo := new(MockContainerRepository)
	mockUoW := new(MockContainerUoW)
	mockFactory := new(MockContainerUoWFactory)

	notFound := errs.NewObjectNotFoundError("container", "KON-C-9")

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ContainerRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, cmd.SerialNumber()).Return(nil, notFound).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewEmptyContainerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
}

func TestEmptyContainerCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	// Arrange
	var cmd commands.EmptyContainerCommand
	mockFactory := new(MockContainerUoWFactory)
	handler := commands.NewEmptyContainerCommandHandler(mockFactory)

	// Act
	err := handler.Handle(t.Context(), cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEmptyContainerCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}
