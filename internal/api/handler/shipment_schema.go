package handler

import "github.com/freightline/tms-backend/internal/core/domain"

// Transport-layer request/response types. These are intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type locationRequest struct {
	City    string `json:"city"    validate:"required"`
	State   string `json:"state"   validate:"required"`
	Country string `json:"country" validate:"required"`
}

type trackingEventRequest struct {
	Timestamp string          `json:"timestamp" validate:"required"`
	Status    string          `json:"status"    validate:"required"`
	Location  locationRequest `json:"location"  validate:"required"`
}

type createShipmentRequest struct {
	Reference        string                 `json:"reference"        validate:"required"`
	ShipperName      string                 `json:"shipperName"      validate:"required"`
	CarrierName      string                 `json:"carrierName"      validate:"required"`
	PickupLocation   locationRequest        `json:"pickupLocation"   validate:"required"`
	DeliveryLocation locationRequest        `json:"deliveryLocation" validate:"required"`
	PickupDate       string                 `json:"pickupDate"       validate:"required"`
	DeliveryDate     string                 `json:"deliveryDate"     validate:"required"`
	Status           string                 `json:"status"           validate:"required"`
	TrackingEvents   []trackingEventRequest `json:"trackingEvents"`
	Rate             float64                `json:"rate"             validate:"required,gt=0"`
	Currency         string                 `json:"currency"         validate:"required"`
	ServiceLevel     string                 `json:"serviceLevel"     validate:"required"`
	IsFlagged        *bool                  `json:"isFlagged"`
}

// updateShipmentRequest is a partial update: absent fields stay untouched.
type updateShipmentRequest struct {
	Reference        *string                `json:"reference"`
	ShipperName      *string                `json:"shipperName"`
	CarrierName      *string                `json:"carrierName"`
	PickupLocation   *locationRequest       `json:"pickupLocation"`
	DeliveryLocation *locationRequest       `json:"deliveryLocation"`
	PickupDate       *string                `json:"pickupDate"`
	DeliveryDate     *string                `json:"deliveryDate"`
	Status           *string                `json:"status"`
	TrackingEvents   []trackingEventRequest `json:"trackingEvents"`
	Rate             *float64               `json:"rate"`
	Currency         *string                `json:"currency"`
	ServiceLevel     *string                `json:"serviceLevel"`
	IsFlagged        *bool                  `json:"isFlagged"`
}

type deleteShipmentResponse struct {
	Deleted bool `json:"deleted"`
}

// listShipmentsResponse is the page envelope: the slice of matching records
// plus the counts a client needs to render a pager.
type listShipmentsResponse struct {
	Items      []domain.Shipment `json:"items"`
	TotalCount int               `json:"totalCount"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}
