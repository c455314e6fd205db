package booking

import (
	"context"

	"doctorsportal/internal/domain"
)

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Booking, error)
	CountForOwner(ctx context.Context, email, date, offeringName string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// OfferingReader resolves the catalog entry a booking refers to
type OfferingReader interface {
	GetByName(ctx context.Context, name string) (*domain.Offering, error)
}
