package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAttachProofCommandIsNotConstructed = errors.New(
		"AttachProofCommand must be created via NewAttachProofCommand constructor",
	)
	ErrImageRefIsRequired = errors.New("image reference is required")
)

// AttachProofCommand represents a request to add a delivery photo to an
// order's proof ledger. The ledger is append-only; there is no command to
// amend or remove a record.
type AttachProofCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	imageRef string

	guard guard.ConstructorGuard
}

// NewAttachProofCommand creates a command to append a proof record.
// The image reference is an opaque storage key, never the image bytes.
func NewAttachProofCommand(orderID kernel.UUID, imageRef string) (AttachProofCommand, error) {
	command := AttachProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setImageRef(imageRef),
	); err != nil {
		return AttachProofCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachProofCommandIsNotConstructed)
}

// OrderID returns the order the proof belongs to.
func (c AttachProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ImageRef returns the storage reference of the captured photo.
func (c AttachProofCommand) ImageRef() string {
	return c.imageRef
}

func (c *AttachProofCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachProofCommand) setImageRef(imageRef string) error {
	if imageRef == "" {
		return ErrImageRefIsRequired
	}

	c.imageRef = imageRef
	return nil
}
