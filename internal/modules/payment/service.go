package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doctorsportal/internal/domain"
	"doctorsportal/internal/repository"

	"github.com/rs/zerolog"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrAlreadyPaid         = errors.New("booking already paid")
	ErrTransactionConflict = errors.New("transaction already recorded for another booking")
	ErrProvider            = errors.New("payment provider failure")
)

type Options struct {
	Currency    string
	MethodTypes []string
}

type Service struct {
	payments paymentRepo
	bookings bookingStore
	intents  IntentCreator
	log      zerolog.Logger
	opts     Options
}

func NewService(payments paymentRepo, bookings bookingStore, intents IntentCreator, log zerolog.Logger, opts Options) *Service {
	if opts.Currency == "" {
		opts.Currency = "usd"
	}
	if len(opts.MethodTypes) == 0 {
		opts.MethodTypes = []string{"card"}
	}
	return &Service{
		payments: payments,
		bookings: bookings,
		intents:  intents,
		log:      log,
		opts:     opts,
	}
}

// CreateIntent requests a charge intent for the booking's price and returns
// only the client secret.
func (s *Service) CreateIntent(ctx context.Context, req CreateIntentRequest) (*CreateIntentResponse, error) {
	bookingID := strings.TrimSpace(req.BookingID)

	var intentReq IntentRequest
	switch {
	case bookingID != "":
		b, err := s.bookings.GetByID(ctx, bookingID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("load booking: %w", err)
		}
		if b.Paid {
			return nil, ErrAlreadyPaid
		}
		amount, err := ToMinorUnits(b.Price)
		if err != nil || amount == 0 {
			return nil, ErrValidation
		}
		intentReq = IntentRequest{
			Amount:         amount,
			BookingID:      b.ID,
			IdempotencyKey: fmt.Sprintf("intent-%s-%d", b.ID, amount),
		}
	case req.Price != nil:
		amount, err := ToMinorUnits(*req.Price)
		if err != nil || amount == 0 {
			return nil, ErrValidation
		}
		intentReq = IntentRequest{Amount: amount}
	default:
		return nil, ErrValidation
	}

	intentReq.Currency = s.opts.Currency
	intentReq.MethodTypes = s.opts.MethodTypes

	intent, err := s.intents.CreateIntent(ctx, intentReq)
	if err != nil {
		s.log.Error().Err(err).
			Str("booking_id", intentReq.BookingID).
			Int64("amount", intentReq.Amount).
			Msg("create charge intent failed")
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	return &CreateIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// RecordPayment stores the completed charge, then marks the booking paid.
//
// The two writes are not atomic: if the booking update fails or matches
// nothing, the payment row stays and the result reports BookingUpdated=false.
// Replaying a transaction id returns the stored payment instead of inserting
// a second one; the booking update is re-applied since it is idempotent.
func (s *Service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*RecordResult, error) {
	bookingID := strings.TrimSpace(req.BookingID)
	txID := strings.TrimSpace(req.transactionRef())
	if bookingID == "" || txID == "" || req.Price.IsNegative() {
		return nil, ErrValidation
	}

	res := &RecordResult{}
	p := &domain.Payment{
		BookingID:     bookingID,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Amount:        req.Price,
		TransactionID: txID,
	}
	err := s.payments.Create(ctx, p)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrDuplicate):
		existing, gerr := s.payments.GetByTransactionID(ctx, txID)
		if gerr != nil {
			return nil, fmt.Errorf("load recorded payment: %w", gerr)
		}
		if existing.BookingID != bookingID {
			return nil, ErrTransactionConflict
		}
		p = existing
		res.Duplicate = true
		s.log.Info().Str("transaction_id", txID).Msg("payment notification replayed")
	default:
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	res.Payment = p

	n, err := s.bookings.MarkPaid(ctx, bookingID, txID)
	if err != nil {
		s.log.Error().Err(err).
			Str("booking_id", bookingID).
			Str("transaction_id", txID).
			Msg("payment stored but booking update failed")
		return res, fmt.Errorf("mark booking paid: %w", err)
	}
	if n == 0 {
		s.log.Warn().
			Str("booking_id", bookingID).
			Str("transaction_id", txID).
			Msg("payment stored for unknown booking")
		return res, nil
	}

	res.BookingUpdated = true
	return res, nil
}
