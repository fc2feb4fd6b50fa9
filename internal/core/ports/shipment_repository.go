package ports

import (
	"context"

	"github.com/freightline/tms-backend/internal/core/domain"
)

// ShipmentRepository owns the canonical shipment collection. Implementations
// must keep point lookup and scan order consistent under a single
// mutual-exclusion boundary, and must hand out copies, never internal state.
type ShipmentRepository interface {
	// Get returns the shipment with the given id or ErrShipmentNotFound.
	Get(ctx context.Context, id string) (*domain.Shipment, error)
	// List returns a snapshot of the full collection in insertion order.
	List(ctx context.Context) ([]domain.Shipment, error)
	// Add assigns a fresh unique id and appends the shipment. IsFlagged
	// defaults to false unless set on the input.
	Add(ctx context.Context, s domain.Shipment) (*domain.Shipment, error)
	// Update merges the patch into the stored record and returns the result,
	// or ErrShipmentNotFound.
	Update(ctx context.Context, id string, patch domain.ShipmentPatch) (*domain.Shipment, error)
	// Delete removes the shipment. A missing id is not an error: it returns
	// false.
	Delete(ctx context.Context, id string) (bool, error)
	// ToggleFlag flips IsFlagged and returns the updated record, or
	// ErrShipmentNotFound.
	ToggleFlag(ctx context.Context, id string) (*domain.Shipment, error)
}
