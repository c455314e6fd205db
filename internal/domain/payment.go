package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records one completed charge. Immutable once stored.
type Payment struct {
	ID            string          `json:"id"`
	BookingID     string          `json:"bookingId"`
	Email         string          `json:"email,omitempty"`
	Amount        decimal.Decimal `json:"price"`
	TransactionID string          `json:"transactionId"`
	CreatedAt     time.Time       `json:"createdAt"`
}
