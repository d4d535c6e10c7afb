package commands

import (
	"errors"

	"stowage/internal/pkg/guard"
)

var ErrAutoStowCommandIsNotConstructed = errors.New(
	"AutoStowCommand must be created via NewAutoStowCommand constructor",
)

// AutoStowCommand triggers automatic stowage of a waiting container.
// It takes the first container that is not on any ship and places it on the
// vessel with the most free weight capacity that can still accept it.
//
// Example:
//
//	cmd := NewAutoStowCommand()
//	handler := NewAutoStowCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Nothing to stow or no ship fits: %v", err)
//	}
type AutoStowCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoStowCommand creates a new command to trigger automatic stowage.
// This is a parameterless command that initiates the container-ship matching process.
func NewAutoStowCommand() AutoStowCommand {
	return AutoStowCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoStowCommandIsNotConstructed if validation fails.
func (c *AutoStowCommand) Validate() error {
	return c.guard.Validate(
		ErrAutoStowCommandIsNotConstructed,
	)
}
