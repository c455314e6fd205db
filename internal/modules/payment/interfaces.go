package payment

import (
	"context"

	"doctorsportal/internal/domain"
)

type bookingStore interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	MarkPaid(ctx context.Context, id, transactionID string) (int64, error)
}

type paymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
}
