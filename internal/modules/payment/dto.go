package payment

import (
	"doctorsportal/internal/domain"

	"github.com/shopspring/decimal"
)

// CreateIntentRequest names a stored booking, or carries a bare price the
// way older clients send it. A booking id wins when both are present.
type CreateIntentRequest struct {
	BookingID string           `json:"bookingId"`
	Price     *decimal.Decimal `json:"price"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest also accepts the reference under "transectionId",
// the key older checkout pages post.
type RecordPaymentRequest struct {
	BookingID           string          `json:"bookingId" binding:"required"`
	TransactionID       string          `json:"transactionId"`
	LegacyTransactionID string          `json:"transectionId"`
	Email               string          `json:"email"`
	Price               decimal.Decimal `json:"price"`
}

func (r RecordPaymentRequest) transactionRef() string {
	if r.TransactionID != "" {
		return r.TransactionID
	}
	return r.LegacyTransactionID
}

type RecordResult struct {
	Payment        *domain.Payment `json:"payment"`
	Duplicate      bool            `json:"duplicate"`
	BookingUpdated bool            `json:"bookingUpdated"`
}
