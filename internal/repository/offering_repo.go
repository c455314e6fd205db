package repository

import (
	"context"
	"fmt"

	"doctorsportal/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OfferingRepository struct {
	db *gorm.DB
}

func NewOfferingRepository(db *gorm.DB) *OfferingRepository {
	return &OfferingRepository{db: db}
}

type offeringModel struct {
	ID    string          `gorm:"column:id;primaryKey;size:36"`
	Name  string          `gorm:"column:name;uniqueIndex"`
	Price decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	Slots []string        `gorm:"column:slots;serializer:json"`
}

func (offeringModel) TableName() string { return "offerings" }

func toDomainOffering(m offeringModel) domain.Offering {
	slots := m.Slots
	if slots == nil {
		slots = []string{}
	}
	return domain.Offering{ID: m.ID, Name: m.Name, Price: m.Price, Slots: slots}
}

func (r *OfferingRepository) Create(ctx context.Context, o *domain.Offering) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	m := offeringModel{ID: o.ID, Name: o.Name, Price: o.Price, Slots: o.Slots}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert offering: %w", err)
	}
	return nil
}

// List returns the full catalog ordered by name.
func (r *OfferingRepository) List(ctx context.Context) ([]domain.Offering, error) {
	var rows []offeringModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Offering, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainOffering(m))
	}
	return out, nil
}

func (r *OfferingRepository) ListNames(ctx context.Context) ([]domain.OfferingName, error) {
	var out []domain.OfferingName
	err := r.db.WithContext(ctx).
		Model(&offeringModel{}).
		Select("id", "name").
		Order("name").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OfferingRepository) GetByName(ctx context.Context, name string) (*domain.Offering, error) {
	var m offeringModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	o := toDomainOffering(m)
	return &o, nil
}

// UpdateAllPrices sets the same price on every offering.
func (r *OfferingRepository) UpdateAllPrices(ctx context.Context, price decimal.Decimal) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&offeringModel{}).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Update("price", price)
	return tx.RowsAffected, tx.Error
}
