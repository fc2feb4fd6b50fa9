// Package seed loads the demo dataset: 30 shipments and two user accounts.
package seed

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/freightline/tms-backend/internal/core/domain"
	"github.com/freightline/tms-backend/internal/core/ports"
)

const shipmentCount = 30

// Shipments populates the store with the demo collection. Every fifth record
// is flagged, every fourth is delivered.
func Shipments(ctx context.Context, repo ports.ShipmentRepository) error {
	for i := 1; i <= shipmentCount; i++ {
		pickup := domain.Location{City: "Dallas", State: "TX", Country: "USA"}
		delivery := domain.Location{City: "Atlanta", State: "GA", Country: "USA"}

		shipper := "Globex Logistics"
		serviceLevel := "Standard"
		if i%2 == 0 {
			shipper = "Acme Corp"
			serviceLevel = "Express"
		}
		carrier := "BlueSky Freight"
		if i%3 == 0 {
			carrier = "FastTrack"
		}
		status := "In Transit"
		if i%4 == 0 {
			status = "Delivered"
		}
		flagged := i%5 == 0

		s := domain.Shipment{
			Reference:        fmt.Sprintf("REF-%d", 1000+i),
			ShipperName:      shipper,
			CarrierName:      carrier,
			PickupLocation:   pickup,
			DeliveryLocation: delivery,
			PickupDate:       fmt.Sprintf("2026-01-%02d", (i%28)+1),
			DeliveryDate:     fmt.Sprintf("2026-02-%02d", (i%28)+1),
			Status:           status,
			TrackingEvents:   trackingEvents(pickup, delivery),
			Rate:             float64(1200 + i*15),
			Currency:         "USD",
			ServiceLevel:     serviceLevel,
			IsFlagged:        flagged,
		}

		if _, err := repo.Add(ctx, s); err != nil {
			return fmt.Errorf("seed shipment %d: %w", i, err)
		}
	}
	return nil
}

func trackingEvents(pickup, delivery domain.Location) []domain.TrackingEvent {
	return []domain.TrackingEvent{
		{
			Timestamp: "2026-01-01T09:00:00Z",
			Status:    "Picked up",
			Location:  pickup,
		},
		{
			Timestamp: "2026-01-02T14:30:00Z",
			Status:    "In transit",
			Location:  domain.Location{City: "Transit Hub", State: pickup.State, Country: pickup.Country},
		},
		{
			Timestamp: "2026-01-03T18:45:00Z",
			Status:    "Out for delivery",
			Location:  delivery,
		},
	}
}

// Users returns the demo accounts with bcrypt-hashed passwords.
func Users() ([]domain.User, error) {
	demo := []struct {
		id, username, password, role string
	}{
		{"1", "admin", "admin123", domain.RoleAdmin},
		{"2", "employee", "employee123", domain.RoleEmployee},
	}

	users := make([]domain.User, 0, len(demo))
	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", d.username, err)
		}
		users = append(users, domain.User{
			ID:           d.id,
			Username:     d.username,
			PasswordHash: string(hash),
			Role:         d.role,
		})
	}
	return users, nil
}
