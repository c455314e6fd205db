package repository_test

import (
	"context"
	"testing"

	"doctorsportal/internal/database"
	"doctorsportal/internal/domain"
	"doctorsportal/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func cleaning(slot string) *domain.Booking {
	return &domain.Booking{
		Email:        "a@x.com",
		OfferingName: "Cleaning",
		Date:         "2024-05-01",
		TimeSlot:     slot,
		Price:        decimal.NewFromInt(99),
	}
}

func TestBookingRepository_SlotIsUnique(t *testing.T) {
	repo := repository.NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, cleaning("08:00 AM - 08:30 AM")))

	other := cleaning("08:00 AM - 08:30 AM")
	other.Email = "b@x.com"
	assert.ErrorIs(t, repo.Create(ctx, other), repository.ErrDuplicate)

	other.TimeSlot = "08:30 AM - 09:00 AM"
	other.ID = ""
	require.NoError(t, repo.Create(ctx, other))

	booked, err := repo.ListByDate(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, booked, 2)
}

func TestBookingRepository_SlotlessBookingsDoNotCollide(t *testing.T) {
	repo := repository.NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	first := cleaning("")
	second := cleaning("")
	second.Email = "b@x.com"

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, got.TimeSlot)
}

func TestBookingRepository_CountForOwner(t *testing.T) {
	repo := repository.NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, cleaning("08:00 AM - 08:30 AM")))

	n, err := repo.CountForOwner(ctx, "a@x.com", "2024-05-01", "Cleaning")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.CountForOwner(ctx, "a@x.com", "2024-05-02", "Cleaning")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBookingRepository_DeleteAndMarkPaid(t *testing.T) {
	repo := repository.NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	b := cleaning("08:00 AM - 08:30 AM")
	require.NoError(t, repo.Create(ctx, b))
	assert.False(t, b.Paid)

	n, err := repo.MarkPaid(ctx, b.ID, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.Paid)
	assert.Equal(t, "tx-1", got.TransactionID)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(99)))

	n, err = repo.MarkPaid(ctx, "missing", "tx-2")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPaymentRepository_TransactionIDIsUnique(t *testing.T) {
	repo := repository.NewPaymentRepository(setupTestDB(t))
	ctx := context.Background()

	p := &domain.Payment{BookingID: "b-1", TransactionID: "tx-1", Amount: decimal.NewFromInt(99)}
	require.NoError(t, repo.Create(ctx, p))
	assert.NotEmpty(t, p.ID)

	dup := &domain.Payment{BookingID: "b-1", TransactionID: "tx-1", Amount: decimal.NewFromInt(99)}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicate)

	got, err := repo.GetByTransactionID(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = repo.GetByTransactionID(ctx, "tx-404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOfferingRepository(t *testing.T) {
	repo := repository.NewOfferingRepository(setupTestDB(t))
	ctx := context.Background()

	slots := []string{"08:00 AM - 08:30 AM", "08:30 AM - 09:00 AM"}
	require.NoError(t, repo.Create(ctx, &domain.Offering{Name: "Cleaning", Price: decimal.NewFromInt(99), Slots: slots}))
	require.NoError(t, repo.Create(ctx, &domain.Offering{Name: "Braces", Price: decimal.NewFromInt(150)}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.Offering{Name: "Cleaning"}), repository.ErrDuplicate)

	got, err := repo.GetByName(ctx, "Cleaning")
	require.NoError(t, err)
	assert.Equal(t, slots, got.Slots)

	names, err := repo.ListNames(ctx)
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "Braces", names[0].Name)

	n, err := repo.UpdateAllPrices(ctx, decimal.NewFromInt(120))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	for _, o := range all {
		assert.True(t, o.Price.Equal(decimal.NewFromInt(120)), o.Name)
	}
}
