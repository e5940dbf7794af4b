package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand triggers the assignment of an active courier to a
// pending order. It takes the oldest order still in Created status and
// hands it to the first courier available for work.
//
// Example:
//
//	cmd := NewAssignOrderCommand()
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no active couriers: %v", err)
//	}
type AssignOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a new command to trigger order assignment.
// This is a parameterless command run on a schedule by the dispatcher job.
func NewAssignOrderCommand() AssignOrderCommand {
	return AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignOrderCommandIsNotConstructed,
	)
}
