package domain

import "errors"

var ErrShipmentNotFound = errors.New("shipment not found")

// Location is a plain value type embedded in shipments and tracking events.
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// TrackingEvent is one entry in a shipment's append-only history.
// Ordering is insertion order; chronology is by convention, not enforced.
type TrackingEvent struct {
	Timestamp string   `json:"timestamp"`
	Status    string   `json:"status"`
	Location  Location `json:"location"`
}

// Shipment is the core aggregate. The store owns every instance; consumers
// always receive copies.
type Shipment struct {
	ID               string          `json:"id"`
	Reference        string          `json:"reference"`
	ShipperName      string          `json:"shipperName"`
	CarrierName      string          `json:"carrierName"`
	PickupLocation   Location        `json:"pickupLocation"`
	DeliveryLocation Location        `json:"deliveryLocation"`
	PickupDate       string          `json:"pickupDate"`
	DeliveryDate     string          `json:"deliveryDate"`
	Status           string          `json:"status"`
	TrackingEvents   []TrackingEvent `json:"trackingEvents"`
	Rate             float64         `json:"rate"`
	Currency         string          `json:"currency"`
	ServiceLevel     string          `json:"serviceLevel"`
	IsFlagged        bool            `json:"isFlagged"`
}

// Clone returns a deep copy so callers never alias store-owned state.
func (s Shipment) Clone() Shipment {
	c := s
	if s.TrackingEvents != nil {
		c.TrackingEvents = make([]TrackingEvent, len(s.TrackingEvents))
		copy(c.TrackingEvents, s.TrackingEvents)
	}
	return c
}

// ShipmentPatch carries a partial update. Nil fields are left untouched;
// non-nil fields are merged into the existing record.
type ShipmentPatch struct {
	Reference        *string
	ShipperName      *string
	CarrierName      *string
	PickupLocation   *Location
	DeliveryLocation *Location
	PickupDate       *string
	DeliveryDate     *string
	Status           *string
	TrackingEvents   []TrackingEvent
	Rate             *float64
	Currency         *string
	ServiceLevel     *string
	IsFlagged        *bool
}

// Apply merges the patch into s in place.
func (p ShipmentPatch) Apply(s *Shipment) {
	if p.Reference != nil {
		s.Reference = *p.Reference
	}
	if p.ShipperName != nil {
		s.ShipperName = *p.ShipperName
	}
	if p.CarrierName != nil {
		s.CarrierName = *p.CarrierName
	}
	if p.PickupLocation != nil {
		s.PickupLocation = *p.PickupLocation
	}
	if p.DeliveryLocation != nil {
		s.DeliveryLocation = *p.DeliveryLocation
	}
	if p.PickupDate != nil {
		s.PickupDate = *p.PickupDate
	}
	if p.DeliveryDate != nil {
		s.DeliveryDate = *p.DeliveryDate
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.TrackingEvents != nil {
		s.TrackingEvents = make([]TrackingEvent, len(p.TrackingEvents))
		copy(s.TrackingEvents, p.TrackingEvents)
	}
	if p.Rate != nil {
		s.Rate = *p.Rate
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.ServiceLevel != nil {
		s.ServiceLevel = *p.ServiceLevel
	}
	if p.IsFlagged != nil {
		s.IsFlagged = *p.IsFlagged
	}
}
