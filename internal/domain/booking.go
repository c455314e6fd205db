package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking reserves one slot of one offering on one date for one identity.
// OfferingName is a logical reference to Offering.Name, not a foreign key.
type Booking struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	OfferingName  string          `json:"treatmentName"`
	Date          string          `json:"appointment"`
	TimeSlot      string          `json:"slot"`
	Patient       string          `json:"patient,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Paid          bool            `json:"paid"`
	TransactionID string          `json:"transactionId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
