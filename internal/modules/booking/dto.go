package booking

import (
	"strings"

	"doctorsportal/internal/domain"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest keeps the field names the booking form has always
// sent. The slot may arrive as "slot" or as "timeSlot".
type CreateBookingRequest struct {
	Email          string          `json:"email" binding:"required,email"`
	Date           string          `json:"appointment" binding:"required"`
	OfferingName   string          `json:"treatmentName" binding:"required"`
	TimeSlot       string          `json:"slot"`
	LegacyTimeSlot string          `json:"timeSlot"`
	Patient        string          `json:"patient"`
	Phone          string          `json:"phone"`
	Price          decimal.Decimal `json:"price"`
}

func (r CreateBookingRequest) slot() string {
	if s := strings.TrimSpace(r.TimeSlot); s != "" {
		return s
	}
	return strings.TrimSpace(r.LegacyTimeSlot)
}

// AdmissionResult is either an accepted booking or a rejection message.
type AdmissionResult struct {
	Accepted bool            `json:"accepted"`
	Booking  *domain.Booking `json:"booking,omitempty"`
	Message  string          `json:"message,omitempty"`
}

type CancelResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
