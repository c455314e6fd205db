package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doctorsportal/internal/domain"
	"doctorsportal/internal/pkg/validator"
	"doctorsportal/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	bookings  BookingRepository
	offerings OfferingReader
}

func NewService(bookings BookingRepository, offerings OfferingReader) *Service {
	return &Service{bookings: bookings, offerings: offerings}
}

// CreateBooking admits a booking unless the owner already holds one for the
// same offering on the same date, whatever the slot. The duplicate check and
// the insert are separate store calls; the storage unique index on
// offering/date/slot is what stops two owners taking the same last slot.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*AdmissionResult, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.OfferingName)
	if !validator.Email(email) || !validator.Date(req.Date) || name == "" || req.Price.IsNegative() {
		return nil, ErrValidation
	}

	n, err := s.bookings.CountForOwner(ctx, email, req.Date, name)
	if err != nil {
		return nil, fmt.Errorf("check existing bookings: %w", err)
	}
	if n > 0 {
		return &AdmissionResult{
			Accepted: false,
			Message:  fmt.Sprintf("You have already booked for %s", req.Date),
		}, nil
	}

	price := req.Price
	offering, err := s.offerings.GetByName(ctx, name)
	switch {
	case err == nil:
		price = offering.Price
	case errors.Is(err, repository.ErrNotFound):
	default:
		return nil, fmt.Errorf("lookup offering: %w", err)
	}

	b := &domain.Booking{
		Email:        email,
		OfferingName: name,
		Date:         req.Date,
		TimeSlot:     req.slot(),
		Patient:      strings.TrimSpace(req.Patient),
		Phone:        strings.TrimSpace(req.Phone),
		Price:        price,
		Paid:         false,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return &AdmissionResult{Accepted: true, Booking: b}, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

// CancelBooking deletes the booking. Unknown ids report zero deletions.
func (s *Service) CancelBooking(ctx context.Context, id string) (*CancelResult, error) {
	if !validID(id) {
		return &CancelResult{DeletedCount: 0}, nil
	}
	n, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}
	return &CancelResult{DeletedCount: n}, nil
}

// ListForIdentity serves the owner-scoped list. Asking for someone else's
// bookings is rejected outright rather than filtered to nothing.
func (s *Service) ListForIdentity(ctx context.Context, queryEmail, verifiedEmail string) ([]domain.Booking, error) {
	q := normalizeEmail(queryEmail)
	if q == "" || q != normalizeEmail(verifiedEmail) {
		return nil, ErrForbidden
	}
	return s.bookings.ListByEmail(ctx, q)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
