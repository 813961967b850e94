package services

import "fmt"

// NotFoundError means the referenced seller or product does not exist.
// Handlers map it to HTTP 404.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// InvalidStateError means a seller transition was attempted from a
// non-pending status. Handlers map it to HTTP 400.
type InvalidStateError struct {
	SellerID string
	Status   string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("seller %s is not pending (current status: %s)", e.SellerID, e.Status)
}

// ValidationError means malformed or out-of-range input. Handlers map it to
// HTTP 400 with the field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
