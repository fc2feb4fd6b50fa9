// Package query implements the pure filter → sort → paginate pipeline applied
// to a snapshot of the shipment collection. Nothing here mutates its input.
package query

import (
	"strings"

	"github.com/freightline/tms-backend/internal/core/domain"
)

// LocationFilter matches a location field-by-field with exact equality.
// Empty fields are wildcards.
type LocationFilter struct {
	City    string
	State   string
	Country string
}

func (f *LocationFilter) matches(loc domain.Location) bool {
	if f == nil {
		return true
	}
	if f.City != "" && loc.City != f.City {
		return false
	}
	if f.State != "" && loc.State != f.State {
		return false
	}
	if f.Country != "" && loc.Country != f.Country {
		return false
	}
	return true
}

// Filter holds the list criteria. A zero Filter matches everything.
type Filter struct {
	Status           string // exact match
	ShipperName      string // case-insensitive substring
	CarrierName      string // case-insensitive substring
	IsFlagged        *bool  // exact match when non-nil
	PickupLocation   *LocationFilter
	DeliveryLocation *LocationFilter
}

func (f Filter) matches(s domain.Shipment) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.ShipperName != "" && !containsFold(s.ShipperName, f.ShipperName) {
		return false
	}
	if f.CarrierName != "" && !containsFold(s.CarrierName, f.CarrierName) {
		return false
	}
	if f.IsFlagged != nil && s.IsFlagged != *f.IsFlagged {
		return false
	}
	if !f.PickupLocation.matches(s.PickupLocation) {
		return false
	}
	if !f.DeliveryLocation.matches(s.DeliveryLocation) {
		return false
	}
	return true
}

// ApplyFilter returns the shipments satisfying every supplied criterion,
// preserving input order.
func ApplyFilter(items []domain.Shipment, f Filter) []domain.Shipment {
	out := make([]domain.Shipment, 0, len(items))
	for _, s := range items {
		if f.matches(s) {
			out = append(out, s)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
