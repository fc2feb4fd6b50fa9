package ports

import (
	"context"

	"github.com/freightline/tms-backend/internal/core/domain"
	"github.com/freightline/tms-backend/internal/core/query"
)

// CreateShipmentInput carries all data needed to create a new shipment.
// IsFlagged defaults to false when nil.
type CreateShipmentInput struct {
	Reference        string
	ShipperName      string
	CarrierName      string
	PickupLocation   domain.Location
	DeliveryLocation domain.Location
	PickupDate       string
	DeliveryDate     string
	Status           string
	TrackingEvents   []domain.TrackingEvent
	Rate             float64
	Currency         string
	ServiceLevel     string
	IsFlagged        *bool
}

// ListShipmentsInput is one full list query.
type ListShipmentsInput struct {
	Filter    query.Filter
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ShipmentService defines the use-case operations over the shipment
// collection. Mutating operations take the caller's identity and run the
// authorization guard before touching any state.
type ShipmentService interface {
	List(ctx context.Context, input ListShipmentsInput) (*query.Page, error)
	Get(ctx context.Context, id string) (*domain.Shipment, error)
	Create(ctx context.Context, identity *domain.Identity, input CreateShipmentInput) (*domain.Shipment, error)
	Update(ctx context.Context, identity *domain.Identity, id string, patch domain.ShipmentPatch) (*domain.Shipment, error)
	Delete(ctx context.Context, identity *domain.Identity, id string) (bool, error)
	ToggleFlag(ctx context.Context, identity *domain.Identity, id string) (*domain.Shipment, error)
}
