// Package domain holds the record entity and service contracts
package domain

import "context"

// StatusProcessed is the status written by the batch engine.
// The engine never reads or branches on the prior status.
const StatusProcessed = "PROCESSED"

// Record is the persisted entity
// ID is zero until first save and never changes after
type Record struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Email       string `json:"email"`
}

// RecordInput is the create/update payload
type RecordInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status,omitempty"`
	Email       string `json:"email" validate:"required,strictemail"`
}

// ServicePort defines the service contract for records
type ServicePort interface {
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id int64) (Record, error)
	Create(ctx context.Context, in RecordInput) (Record, error)
	Update(ctx context.Context, id int64, in RecordInput) (Record, error)
	Delete(ctx context.Context, id int64) error

	// ProcessAll runs the concurrent batch over every stored record id and
	// returns the successfully processed subset
	ProcessAll(ctx context.Context) ([]Record, error)
}
