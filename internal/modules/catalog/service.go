package catalog

import (
	"context"
	"errors"
	"strings"

	"doctorsportal/internal/domain"
	"doctorsportal/internal/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrDuplicateName = errors.New("offering name already exists")
)

type OfferingRepository interface {
	Create(ctx context.Context, o *domain.Offering) error
	ListNames(ctx context.Context) ([]domain.OfferingName, error)
	UpdateAllPrices(ctx context.Context, price decimal.Decimal) (int64, error)
}

type Service struct {
	offerings OfferingRepository
}

func NewService(offerings OfferingRepository) *Service {
	return &Service{offerings: offerings}
}

func (s *Service) ListNames(ctx context.Context) ([]domain.OfferingName, error) {
	return s.offerings.ListNames(ctx)
}

// CreateOffering adds a catalog entry. Slot order is kept as given since
// availability is reported in template order.
func (s *Service) CreateOffering(ctx context.Context, req CreateOfferingRequest) (*domain.Offering, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Price.IsNegative() || len(req.Slots) == 0 {
		return nil, ErrValidation
	}

	seen := make(map[string]struct{}, len(req.Slots))
	slots := make([]string, 0, len(req.Slots))
	for _, slot := range req.Slots {
		slot = strings.TrimSpace(slot)
		if slot == "" {
			return nil, ErrValidation
		}
		if _, dup := seen[slot]; dup {
			continue
		}
		seen[slot] = struct{}{}
		slots = append(slots, slot)
	}

	o := &domain.Offering{Name: name, Price: req.Price, Slots: slots}
	if err := s.offerings.Create(ctx, o); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return o, nil
}

// UpdatePrices sets one price across the whole catalog.
func (s *Service) UpdatePrices(ctx context.Context, req UpdatePricesRequest) (*UpdatePricesResult, error) {
	if req.Price.IsNegative() {
		return nil, ErrValidation
	}
	n, err := s.offerings.UpdateAllPrices(ctx, req.Price)
	if err != nil {
		return nil, err
	}
	return &UpdatePricesResult{ModifiedCount: n}, nil
}
