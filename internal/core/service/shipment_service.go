package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freightline/tms-backend/internal/core/domain"
	"github.com/freightline/tms-backend/internal/core/ports"
	"github.com/freightline/tms-backend/internal/core/query"
)

// ShipmentService applies the authorization guard and delegates to the store.
// List queries run the filter/sort/paginate pipeline over a store snapshot.
type ShipmentService struct {
	repo   ports.ShipmentRepository
	logger zerolog.Logger
}

func NewShipmentService(repo ports.ShipmentRepository, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, logger: logger}
}

// List answers a filtered, sorted, paginated query. Reads are open: no
// identity is required.
func (s *ShipmentService) List(ctx context.Context, input ports.ListShipmentsInput) (*query.Page, error) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	page := query.Apply(snapshot, query.Params{
		Filter:    input.Filter,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Page:      input.Page,
		PageSize:  input.PageSize,
	})
	return &page, nil
}

// Get returns a single shipment or ErrShipmentNotFound.
func (s *ShipmentService) Get(ctx context.Context, id string) (*domain.Shipment, error) {
	return s.repo.Get(ctx, id)
}

// Create adds a new shipment. Admin only; the guard runs before any state is
// touched.
func (s *ShipmentService) Create(ctx context.Context, identity *domain.Identity, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	if err := RequireRole(identity, domain.RoleAdmin); err != nil {
		return nil, err
	}

	shipment := domain.Shipment{
		Reference:        input.Reference,
		ShipperName:      input.ShipperName,
		CarrierName:      input.CarrierName,
		PickupLocation:   input.PickupLocation,
		DeliveryLocation: input.DeliveryLocation,
		PickupDate:       input.PickupDate,
		DeliveryDate:     input.DeliveryDate,
		Status:           input.Status,
		TrackingEvents:   input.TrackingEvents,
		Rate:             input.Rate,
		Currency:         input.Currency,
		ServiceLevel:     input.ServiceLevel,
	}
	if input.IsFlagged != nil {
		shipment.IsFlagged = *input.IsFlagged
	}

	created, err := s.repo.Add(ctx, shipment)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create shipment")
		return nil, err
	}

	s.logger.Info().Str("id", created.ID).Str("reference", created.Reference).Msg("shipment created")
	return created, nil
}

// Update merges a partial patch into an existing shipment. Requires the
// updateShipment capability (both roles carry it).
func (s *ShipmentService) Update(ctx context.Context, identity *domain.Identity, id string, patch domain.ShipmentPatch) (*domain.Shipment, error) {
	if err := CheckCapability(identity, domain.CapUpdateShipment); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Msg("shipment updated")
	return updated, nil
}

// Delete removes a shipment. Admin only. A missing id degrades to false, not
// an error.
func (s *ShipmentService) Delete(ctx context.Context, identity *domain.Identity, id string) (bool, error) {
	if err := RequireRole(identity, domain.RoleAdmin); err != nil {
		return false, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info().Str("id", id).Msg("shipment deleted")
	}
	return deleted, nil
}

// ToggleFlag flips a shipment's review flag. Requires the flagShipment
// capability.
func (s *ShipmentService) ToggleFlag(ctx context.Context, identity *domain.Identity, id string) (*domain.Shipment, error) {
	if err := CheckCapability(identity, domain.CapFlagShipment); err != nil {
		return nil, err
	}

	flagged, err := s.repo.ToggleFlag(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Bool("is_flagged", flagged.IsFlagged).Msg("shipment flag toggled")
	return flagged, nil
}
