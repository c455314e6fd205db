package availability

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOfferingReader struct {
	mock.Mock
}

func (m *MockOfferingReader) List(ctx context.Context) ([]domain.Offering, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offering), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func catalog() []domain.Offering {
	return []domain.Offering{
		{ID: "o1", Name: "Cleaning", Price: decimal.NewFromInt(99), Slots: []string{"9am", "10am", "11am"}},
		{ID: "o2", Name: "Whitening", Price: decimal.RequireFromString("149.50"), Slots: []string{"9am", "10am"}},
	}
}

func TestService_Availability_SubtractsBookedSlots(t *testing.T) {
	offerings := new(MockOfferingReader)
	bookings := new(MockBookingReader)
	offerings.On("List", mock.Anything).Return(catalog(), nil)
	bookings.On("ListByDate", mock.Anything, "2024-05-01").Return([]domain.Booking{
		{OfferingName: "Cleaning", Date: "2024-05-01", TimeSlot: "10am"},
	}, nil)

	out, err := NewService(offerings, bookings).Availability(context.Background(), "2024-05-01")

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Cleaning", out[0].Name)
	assert.Equal(t, []string{"9am", "11am"}, out[0].Slots)
	assert.Equal(t, []string{"9am", "10am"}, out[1].Slots)
	assert.True(t, out[1].Price.Equal(decimal.RequireFromString("149.5")))
}

func TestService_Availability_NoBookingsYieldsFullTemplate(t *testing.T) {
	offerings := new(MockOfferingReader)
	bookings := new(MockBookingReader)
	offerings.On("List", mock.Anything).Return(catalog(), nil)
	bookings.On("ListByDate", mock.Anything, "2024-06-01").Return([]domain.Booking{}, nil)

	out, err := NewService(offerings, bookings).Availability(context.Background(), "2024-06-01")

	require.NoError(t, err)
	assert.Equal(t, []string{"9am", "10am", "11am"}, out[0].Slots)
}

func TestService_Availability_InvalidDate(t *testing.T) {
	svc := NewService(new(MockOfferingReader), new(MockBookingReader))

	_, err := svc.Availability(context.Background(), "05/01/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestService_Availability_StoreFailure(t *testing.T) {
	offerings := new(MockOfferingReader)
	boom := errors.New("db down")
	offerings.On("List", mock.Anything).Return(nil, boom)

	_, err := NewService(offerings, new(MockBookingReader)).Availability(context.Background(), "2024-05-01")
	assert.ErrorIs(t, err, boom)
}

func TestCompute_IgnoresUnknownOfferingsAndExactMatchesSlots(t *testing.T) {
	out := Compute(catalog(), []domain.Booking{
		{OfferingName: "Surgery", TimeSlot: "9am"},
		{OfferingName: "Cleaning", TimeSlot: "9AM"},
		{OfferingName: "Whitening", TimeSlot: "9am"},
		{OfferingName: "Whitening", TimeSlot: "10am"},
	})

	require.Len(t, out, 2)
	assert.Equal(t, []string{"9am", "10am", "11am"}, out[0].Slots)
	assert.Empty(t, out[1].Slots)
	assert.NotNil(t, out[1].Slots)
}

func TestRemainingSlots_PreservesTemplateOrder(t *testing.T) {
	template := []string{"11am", "9am", "10am", "8am"}
	booked := map[string]struct{}{"9am": {}}

	assert.Equal(t, []string{"11am", "10am", "8am"}, RemainingSlots(template, booked))
	assert.Equal(t, template, RemainingSlots(template, nil))
}
