package repository

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// The unique index closes the admission race for a single slot; the
// owner/offering/date duplicate check stays in the booking service.
// Slotless bookings store NULL so the index does not apply to them.
type bookingModel struct {
	ID            string          `gorm:"column:id;primaryKey;size:36"`
	Email         string          `gorm:"column:email;index:idx_bookings_owner"`
	OfferingName  string          `gorm:"column:offering_name;index:idx_bookings_owner;uniqueIndex:idx_bookings_slot"`
	Date          string          `gorm:"column:date;index:idx_bookings_owner;uniqueIndex:idx_bookings_slot"`
	TimeSlot      *string         `gorm:"column:time_slot;uniqueIndex:idx_bookings_slot"`
	Patient       *string         `gorm:"column:patient"`
	Phone         *string         `gorm:"column:phone"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	Paid          bool            `gorm:"column:paid;not null;default:false"`
	TransactionID *string         `gorm:"column:transaction_id"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:           m.ID,
		Email:        m.Email,
		OfferingName: m.OfferingName,
		Date:         m.Date,
		Price:        m.Price,
		Paid:         m.Paid,
		CreatedAt:    m.CreatedAt,
	}
	if m.TimeSlot != nil {
		b.TimeSlot = *m.TimeSlot
	}
	if m.Patient != nil {
		b.Patient = *m.Patient
	}
	if m.Phone != nil {
		b.Phone = *m.Phone
	}
	if m.TransactionID != nil {
		b.TransactionID = *m.TransactionID
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		Email:         b.Email,
		OfferingName:  b.OfferingName,
		Date:          b.Date,
		TimeSlot:      optional(b.TimeSlot),
		Patient:       optional(b.Patient),
		Phone:         optional(b.Phone),
		Price:         b.Price,
		Paid:          b.Paid,
		TransactionID: optional(b.TransactionID),
		CreatedAt:     b.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

// Create inserts b and assigns its ID. A second booking for an occupied
// offering/date/slot fails with ErrDuplicate.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	return r.list(r.db.WithContext(ctx).Where("date = ?", date))
}

func (r *BookingRepository) ListByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	return r.list(r.db.WithContext(ctx).Where("email = ?", email).Order("date, time_slot"))
}

func (r *BookingRepository) list(q *gorm.DB) ([]domain.Booking, error) {
	var rows []bookingModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// CountForOwner counts bookings held by email for the offering on date,
// regardless of time slot.
func (r *BookingRepository) CountForOwner(ctx context.Context, email, date, offeringName string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("email = ? AND date = ? AND offering_name = ?", email, date, offeringName).
		Count(&cnt).Error
	return cnt, err
}

// Delete removes the booking and reports how many rows went away (0 or 1).
func (r *BookingRepository) Delete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&bookingModel{})
	return tx.RowsAffected, tx.Error
}

// MarkPaid sets paid and the transaction reference unconditionally and
// returns the number of matched bookings.
func (r *BookingRepository) MarkPaid(ctx context.Context, id, transactionID string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"paid":           true,
			"transaction_id": transactionID,
		})
	return tx.RowsAffected, tx.Error
}
