package availability

import (
	"context"
	"errors"
	"fmt"

	"doctorsportal/internal/domain"
	"doctorsportal/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

type OfferingReader interface {
	List(ctx context.Context) ([]domain.Offering, error)
}

type BookingReader interface {
	ListByDate(ctx context.Context, date string) ([]domain.Booking, error)
}

// OfferingAvailability is one catalog entry with its still-bookable slots.
type OfferingAvailability struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Slots []string        `json:"slots"`
}

type Service struct {
	offerings OfferingReader
	bookings  BookingReader
}

func NewService(offerings OfferingReader, bookings BookingReader) *Service {
	return &Service{offerings: offerings, bookings: bookings}
}

// Availability derives the remaining slots of every offering on date from
// the catalog and that date's bookings. Nothing is cached.
func (s *Service) Availability(ctx context.Context, date string) ([]OfferingAvailability, error) {
	if !validator.Date(date) {
		return nil, ErrInvalidDate
	}

	offerings, err := s.offerings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list offerings: %w", err)
	}
	booked, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", date, err)
	}

	return Compute(offerings, booked), nil
}

// Compute subtracts the booked slots from each offering's template.
// Bookings for offerings missing from the catalog are ignored.
func Compute(offerings []domain.Offering, booked []domain.Booking) []OfferingAvailability {
	bookedByOffering := make(map[string]map[string]struct{}, len(offerings))
	for _, b := range booked {
		set, ok := bookedByOffering[b.OfferingName]
		if !ok {
			set = make(map[string]struct{})
			bookedByOffering[b.OfferingName] = set
		}
		set[b.TimeSlot] = struct{}{}
	}

	out := make([]OfferingAvailability, 0, len(offerings))
	for _, o := range offerings {
		out = append(out, OfferingAvailability{
			ID:    o.ID,
			Name:  o.Name,
			Price: o.Price,
			Slots: RemainingSlots(o.Slots, bookedByOffering[o.Name]),
		})
	}
	return out
}

// RemainingSlots keeps template order and matches slots by exact string.
func RemainingSlots(template []string, booked map[string]struct{}) []string {
	out := make([]string, 0, len(template))
	for _, slot := range template {
		if _, taken := booked[slot]; taken {
			continue
		}
		out = append(out, slot)
	}
	return out
}
