package entity

import "context"

// Repository retrieves assembled entity profiles from the backing store.
// Implementations live in the infrastructure layer; the scoring core never
// performs I/O itself.
type Repository interface {
	// GetByID returns the full profile snapshot for an entity, or an error
	// carrying errors.ErrCodeEntityNotFound when the entity does not exist.
	GetByID(ctx context.Context, entityID string) (*EntityRecord, error)
}
