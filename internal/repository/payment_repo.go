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

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID            string          `gorm:"column:id;primaryKey;size:36"`
	BookingID     string          `gorm:"column:booking_id;index"`
	Email         *string         `gorm:"column:email"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(12,2)"`
	TransactionID string          `gorm:"column:transaction_id;uniqueIndex"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	p := &domain.Payment{
		ID:            m.ID,
		BookingID:     m.BookingID,
		Amount:        m.Amount,
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
	}
	if m.Email != nil {
		p.Email = *m.Email
	}
	return p
}

// Create stores p. A transaction id that was already recorded yields ErrDuplicate.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m := paymentModel{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Email:         optional(p.Email),
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	var m paymentModel
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return toDomainPayment(m), nil
}
