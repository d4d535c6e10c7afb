package commands_test

import (
	"testing"

	"stowage/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
)

func TestNewAutoStowCommand(t *testing.T) {
	cmd := commands.NewAutoStowCommand()

	assert.NoError(t, cmd.Validate())
}

func TestAutoStowCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.AutoStowCommand

	err := cmd.Validate()

	assert.ErrorIs(t, err, commands.ErrAutoStowCommandIsNotConstructed)
}
