package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freightline/tms-backend/internal/core/domain"
	"github.com/freightline/tms-backend/internal/core/ports"
	"github.com/freightline/tms-backend/internal/core/query"
)

// --- Request → Service input ---

func toLocation(l locationRequest) domain.Location {
	return domain.Location{City: l.City, State: l.State, Country: l.Country}
}

func toTrackingEvents(events []trackingEventRequest) []domain.TrackingEvent {
	if events == nil {
		return nil
	}
	out := make([]domain.TrackingEvent, len(events))
	for i, e := range events {
		out[i] = domain.TrackingEvent{
			Timestamp: e.Timestamp,
			Status:    e.Status,
			Location:  toLocation(e.Location),
		}
	}
	return out
}

func toCreateInput(req createShipmentRequest) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		Reference:        req.Reference,
		ShipperName:      req.ShipperName,
		CarrierName:      req.CarrierName,
		PickupLocation:   toLocation(req.PickupLocation),
		DeliveryLocation: toLocation(req.DeliveryLocation),
		PickupDate:       req.PickupDate,
		DeliveryDate:     req.DeliveryDate,
		Status:           req.Status,
		TrackingEvents:   toTrackingEvents(req.TrackingEvents),
		Rate:             req.Rate,
		Currency:         req.Currency,
		ServiceLevel:     req.ServiceLevel,
		IsFlagged:        req.IsFlagged,
	}
}

func toPatch(req updateShipmentRequest) domain.ShipmentPatch {
	patch := domain.ShipmentPatch{
		Reference:      req.Reference,
		ShipperName:    req.ShipperName,
		CarrierName:    req.CarrierName,
		PickupDate:     req.PickupDate,
		DeliveryDate:   req.DeliveryDate,
		Status:         req.Status,
		TrackingEvents: toTrackingEvents(req.TrackingEvents),
		Rate:           req.Rate,
		Currency:       req.Currency,
		ServiceLevel:   req.ServiceLevel,
		IsFlagged:      req.IsFlagged,
	}
	if req.PickupLocation != nil {
		loc := toLocation(*req.PickupLocation)
		patch.PickupLocation = &loc
	}
	if req.DeliveryLocation != nil {
		loc := toLocation(*req.DeliveryLocation)
		patch.DeliveryLocation = &loc
	}
	return patch
}

// --- Query string → list input ---

// toListInput reads the list query parameters. Absent parameters fall back to
// the pipeline defaults; a malformed boolean or number is a 400, not a guess.
func toListInput(c echo.Context) (ports.ListShipmentsInput, error) {
	var input ports.ListShipmentsInput

	input.Filter = query.Filter{
		Status:      c.QueryParam("status"),
		ShipperName: c.QueryParam("shipper_name"),
		CarrierName: c.QueryParam("carrier_name"),
	}

	if raw := c.QueryParam("is_flagged"); raw != "" {
		flagged, err := strconv.ParseBool(raw)
		if err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "is_flagged must be a boolean")
		}
		input.Filter.IsFlagged = &flagged
	}

	if lf := toLocationFilter(c, "pickup"); lf != nil {
		input.Filter.PickupLocation = lf
	}
	if lf := toLocationFilter(c, "delivery"); lf != nil {
		input.Filter.DeliveryLocation = lf
	}

	input.SortBy = c.QueryParam("sort_by")
	input.SortOrder = c.QueryParam("sort_order")

	var err error
	if input.Page, err = intParam(c, "page"); err != nil {
		return input, err
	}
	if input.PageSize, err = intParam(c, "page_size"); err != nil {
		return input, err
	}
	return input, nil
}

func toLocationFilter(c echo.Context, prefix string) *query.LocationFilter {
	lf := query.LocationFilter{
		City:    c.QueryParam(prefix + "_city"),
		State:   c.QueryParam(prefix + "_state"),
		Country: c.QueryParam(prefix + "_country"),
	}
	if lf == (query.LocationFilter{}) {
		return nil
	}
	return &lf
}

func intParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return n, nil
}
