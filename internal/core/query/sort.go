package query

import (
	"sort"
	"time"

	"github.com/freightline/tms-backend/internal/core/domain"
)

// Sortable fields. Date fields compare chronologically, the rest by natural
// value ordering.
const (
	SortByPickupDate   = "pickupDate"
	SortByDeliveryDate = "deliveryDate"
	SortByShipperName  = "shipperName"
	SortByCarrierName  = "carrierName"
	SortByRate         = "rate"
)

const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// ApplySort returns a stably sorted copy of items. An empty or unrecognised
// sortBy preserves input order; any order other than DESC means ascending.
func ApplySort(items []domain.Shipment, sortBy, order string) []domain.Shipment {
	less := lessFunc(sortBy)
	if less == nil {
		return items
	}

	sorted := make([]domain.Shipment, len(items))
	copy(sorted, items)

	desc := order == OrderDesc
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func lessFunc(sortBy string) func(a, b domain.Shipment) bool {
	switch sortBy {
	case SortByPickupDate:
		return func(a, b domain.Shipment) bool {
			return parseDate(a.PickupDate).Before(parseDate(b.PickupDate))
		}
	case SortByDeliveryDate:
		return func(a, b domain.Shipment) bool {
			return parseDate(a.DeliveryDate).Before(parseDate(b.DeliveryDate))
		}
	case SortByShipperName:
		return func(a, b domain.Shipment) bool { return a.ShipperName < b.ShipperName }
	case SortByCarrierName:
		return func(a, b domain.Shipment) bool { return a.CarrierName < b.CarrierName }
	case SortByRate:
		return func(a, b domain.Shipment) bool { return a.Rate < b.Rate }
	default:
		return nil
	}
}

// parseDate accepts the seed's date-only form and full RFC 3339 timestamps.
// Unparseable values collapse to the zero time and sort before everything.
func parseDate(v string) time.Time {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t
	}
	return time.Time{}
}
