package commands_test

import (
	"context"
	"errors"
	"testing"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/ship"
	"stowage/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockShipRepository struct {
	mock.Mock
}

func (m *MockShipRepository) Add(ctx context.Context, aggregate *ship.Ship) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipRepository) Update(ctx context.Context, aggregate *ship.Ship) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipRepository) Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ship.Ship), args.Error(1)
}

func (m *MockShipRepository) GetAll(ctx context.Context) ([]*ship.Ship, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*ship.Ship), args.Error(1)
}

type MockShipUoW struct {
	mock.Mock
}

func (m *MockShipUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipUoW) ShipRepository() ports.ShipRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipRepository)
}

type MockShipUoWFactory struct {
	mock.Mock
}

func (m *MockShipUoWFactory) Create() commands.ShipUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipUoW)
}

func TestNewRegisterShipCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockShipUoWFactory)

	// Act
	handler := commands.NewRegisterShipCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestRegisterShipCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()

	cmd, err := commands.NewRegisterShipCommand("MV Aurora", 22.5, 8, 40000)
	require.NoError(t, err)

	mockRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*ship.Ship")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterShipCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterShipCommandHandler_Handle_PersistsCommandParameters(t *testing.T) {
	// Arrange
	ctx := t.Context()

	cmd, err := commands.NewRegisterShipCommand("MV Aurora", 22.5, 2, 1000)
	require.NoError(t, err)

	mockRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipRepository").Return(mockRepo).Once()
	mockRepo.On("Add", ctx, mock.MatchedBy(func(s *ship.Ship) bool {
		return s.ID().IsEqual(cmd.ShipID()) &&
			s.Name() == "MV Aurora" &&
			s.MaxContainerCount() == 2 &&
			s.MaxWeightCapacity() == 1000
	})).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterShipCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRegisterShipCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	// Arrange
	mockFactory := new(MockShipUoWFactory)
	handler := commands.NewRegisterShipCommandHandler(mockFactory)

	// Act
	err := handler.Handle(t.Context(), commands.RegisterShipCommand{})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegisterShipCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestRegisterShipCommandHandler_Handle_RepositoryError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	repoErr := errors.New("insert failed")

	cmd, err := commands.NewRegisterShipCommand("MV Aurora", 22.5, 8, 40000)
	require.NoError(t, err)

	mockRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipRepository").Return(mockRepo).Once()
	mockRepo.On("Add", ctx, mock.AnythingOfType("*ship.Ship")).Return(repoErr).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterShipCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
