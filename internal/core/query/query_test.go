package query

import (
	"testing"

	"github.com/freightline/tms-backend/internal/core/domain"
)

func boolPtr(b bool) *bool { return &b }

func sample() []domain.Shipment {
	return []domain.Shipment{
		{
			ID: "1", ShipperName: "Acme Corp", CarrierName: "FastTrack",
			Status: "In Transit", IsFlagged: false, Rate: 1500,
			PickupDate: "2026-01-03", DeliveryDate: "2026-02-03",
			PickupLocation:   domain.Location{City: "Dallas", State: "TX", Country: "USA"},
			DeliveryLocation: domain.Location{City: "Atlanta", State: "GA", Country: "USA"},
		},
		{
			ID: "2", ShipperName: "Globex Logistics", CarrierName: "BlueSky Freight",
			Status: "Delivered", IsFlagged: true, Rate: 1200,
			PickupDate: "2026-01-01", DeliveryDate: "2026-02-01",
			PickupLocation:   domain.Location{City: "Dallas", State: "TX", Country: "USA"},
			DeliveryLocation: domain.Location{City: "Miami", State: "FL", Country: "USA"},
		},
		{
			ID: "3", ShipperName: "Acme Corp", CarrierName: "BlueSky Freight",
			Status: "In Transit", IsFlagged: false, Rate: 1350,
			PickupDate: "2026-01-02", DeliveryDate: "2026-02-02",
			PickupLocation:   domain.Location{City: "Austin", State: "TX", Country: "USA"},
			DeliveryLocation: domain.Location{City: "Atlanta", State: "GA", Country: "USA"},
		},
	}
}

func ids(items []domain.Shipment) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.ID
	}
	return out
}

func assertOrder(t *testing.T, items []domain.Shipment, want ...string) {
	t.Helper()
	got := ids(items)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFilter_NoCriteriaIsIdentity(t *testing.T) {
	in := sample()
	out := ApplyFilter(in, Filter{})
	assertOrder(t, out, "1", "2", "3")
}

func TestFilter_StatusExactMatch(t *testing.T) {
	out := ApplyFilter(sample(), Filter{Status: "Delivered"})
	assertOrder(t, out, "2")

	if got := ApplyFilter(sample(), Filter{Status: "delivered"}); len(got) != 0 {
		t.Fatalf("status must match exactly, got %v", ids(got))
	}
}

func TestFilter_ShipperSubstringCaseInsensitive(t *testing.T) {
	out := ApplyFilter(sample(), Filter{ShipperName: "acme"})
	assertOrder(t, out, "1", "3")
}

func TestFilter_CarrierSubstringCaseInsensitive(t *testing.T) {
	out := ApplyFilter(sample(), Filter{CarrierName: "BLUESKY"})
	assertOrder(t, out, "2", "3")
}

func TestFilter_IsFlagged(t *testing.T) {
	assertOrder(t, ApplyFilter(sample(), Filter{IsFlagged: boolPtr(true)}), "2")
	assertOrder(t, ApplyFilter(sample(), Filter{IsFlagged: boolPtr(false)}), "1", "3")
}

func TestFilter_LocationSubFilter(t *testing.T) {
	out := ApplyFilter(sample(), Filter{PickupLocation: &LocationFilter{City: "Dallas"}})
	assertOrder(t, out, "1", "2")

	// Absent sub-fields are wildcards.
	out = ApplyFilter(sample(), Filter{PickupLocation: &LocationFilter{State: "TX"}})
	assertOrder(t, out, "1", "2", "3")

	out = ApplyFilter(sample(), Filter{DeliveryLocation: &LocationFilter{City: "Atlanta", State: "GA"}})
	assertOrder(t, out, "1", "3")
}

func TestFilter_CriteriaCombine(t *testing.T) {
	out := ApplyFilter(sample(), Filter{
		ShipperName: "acme",
		CarrierName: "bluesky",
		Status:      "In Transit",
	})
	assertOrder(t, out, "3")
}

func TestSort_PickupDateChronologicalAsc(t *testing.T) {
	out := ApplySort(sample(), SortByPickupDate, OrderAsc)
	assertOrder(t, out, "2", "3", "1")
}

func TestSort_PickupDateDesc(t *testing.T) {
	out := ApplySort(sample(), SortByPickupDate, OrderDesc)
	assertOrder(t, out, "1", "3", "2")
}

func TestSort_RateNaturalOrdering(t *testing.T) {
	out := ApplySort(sample(), SortByRate, "")
	assertOrder(t, out, "2", "3", "1")
}

func TestSort_NoFieldPreservesOrder(t *testing.T) {
	out := ApplySort(sample(), "", OrderDesc)
	assertOrder(t, out, "1", "2", "3")
}

func TestSort_StableOnEqualKeys(t *testing.T) {
	out := ApplySort(sample(), SortByShipperName, OrderAsc)
	// "Acme Corp" ties between 1 and 3: input order must hold.
	assertOrder(t, out, "1", "3", "2")
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := sample()
	_ = ApplySort(in, SortByRate, OrderAsc)
	assertOrder(t, in, "1", "2", "3")
}

func TestPagination_FirstPage(t *testing.T) {
	items := make([]domain.Shipment, 25)
	page := ApplyPagination(items, 1, 10)

	if len(page.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(page.Items))
	}
	if page.TotalCount != 25 || page.TotalPages != 3 || page.Page != 1 || page.PageSize != 10 {
		t.Fatalf("unexpected page meta: %+v", page)
	}
}

func TestPagination_OutOfRangePageClamps(t *testing.T) {
	items := make([]domain.Shipment, 25)
	page := ApplyPagination(items, 99, 10)

	if page.Page != 3 {
		t.Fatalf("expected clamp to page 3, got %d", page.Page)
	}
	if len(page.Items) != 5 {
		t.Fatalf("expected last 5 items, got %d", len(page.Items))
	}
}

func TestPagination_ZeroValuesUseDefaults(t *testing.T) {
	items := make([]domain.Shipment, 25)
	page := ApplyPagination(items, 0, 0)

	if page.Page != 1 || page.PageSize != 10 || len(page.Items) != 10 {
		t.Fatalf("defaults not applied: %+v", page)
	}
}

func TestPagination_EmptyInput(t *testing.T) {
	page := ApplyPagination(nil, 1, 10)
	if page.TotalPages != 1 || page.TotalCount != 0 || len(page.Items) != 0 {
		t.Fatalf("empty input should yield one empty page, got %+v", page)
	}
}

func TestApply_FullPipeline(t *testing.T) {
	page := Apply(sample(), Params{
		Filter:    Filter{Status: "In Transit"},
		SortBy:    SortByPickupDate,
		SortOrder: OrderDesc,
		Page:      1,
		PageSize:  1,
	})

	assertOrder(t, page.Items, "1")
	if page.TotalCount != 2 || page.TotalPages != 2 {
		t.Fatalf("unexpected meta: %+v", page)
	}
}
