package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/repository/csvstore"
)

func newRentalFixture(t *testing.T) (RentalService, *csvstore.Store, string) {
	t.Helper()
	store, err := csvstore.NewStore(t.TempDir())
	require.NoError(t, err)

	weekly := 300.0
	e := domain.Equipment{
		Name:       "Mini Digger",
		Category:   "Excavation",
		Status:     domain.EquipmentStatusAvailable,
		DailyRate:  80,
		WeeklyRate: &weekly,
	}
	equipmentID, err := store.Equipment.Add(context.Background(), &e)
	require.NoError(t, err)

	return NewRentalService(store.Rentals, store.Equipment), store, equipmentID
}

func activeRental(equipmentID string) domain.Rental {
	return domain.Rental{
		EquipmentID:        equipmentID,
		CustomerName:       "Jo Bloggs",
		StartDate:          "2024-06-01",
		ExpectedReturnDate: "2024-06-08",
		RentalRate:         80,
	}
}

func TestQuoteRentalRate(t *testing.T) {
	weekly := 300.0
	e := &domain.Equipment{DailyRate: 80, WeeklyRate: &weekly}

	t.Run("daily is the flat daily rate", func(t *testing.T) {
		rate, err := QuoteRentalRate(e, "2024-06-01", "2024-06-10", PricingDaily, 0)
		require.NoError(t, err)
		assert.Equal(t, 80.0, rate)
	})

	t.Run("weekly charges at least one week", func(t *testing.T) {
		rate, err := QuoteRentalRate(e, "2024-06-01", "2024-06-03", PricingWeekly, 0)
		require.NoError(t, err)
		assert.Equal(t, 300.0, rate)
	})

	t.Run("weekly counts whole weeks from inclusive days", func(t *testing.T) {
		// 2024-06-01 to 2024-06-14 is 14 days inclusive, two weeks.
		rate, err := QuoteRentalRate(e, "2024-06-01", "2024-06-14", PricingWeekly, 0)
		require.NoError(t, err)
		assert.Equal(t, 600.0, rate)
	})

	t.Run("weekly without a weekly rate fails", func(t *testing.T) {
		_, err := QuoteRentalRate(&domain.Equipment{DailyRate: 80}, "2024-06-01", "2024-06-10", PricingWeekly, 0)
		assert.Error(t, err)
	})

	t.Run("custom passes the operator rate through", func(t *testing.T) {
		rate, err := QuoteRentalRate(e, "2024-06-01", "2024-06-10", PricingCustom, 123.45)
		require.NoError(t, err)
		assert.Equal(t, 123.45, rate)
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		_, err := QuoteRentalRate(e, "2024-06-01", "2024-06-10", "Hourly", 0)
		assert.Error(t, err)
	})
}

func TestCreateRentalFlipsEquipmentToRented(t *testing.T) {
	ctx := context.Background()
	svc, store, equipmentID := newRentalFixture(t)

	r := activeRental(equipmentID)
	id, err := svc.CreateRental(ctx, &r, &RentalPricing{Kind: PricingWeekly})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 300.0, r.RentalRate)

	e, err := store.Equipment.GetByID(ctx, equipmentID)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentStatusRented, e.Status)
}

func TestCreateRentalRejectsUnavailableEquipment(t *testing.T) {
	ctx := context.Background()
	svc, store, equipmentID := newRentalFixture(t)

	e, err := store.Equipment.GetByID(ctx, equipmentID)
	require.NoError(t, err)
	e.Status = domain.EquipmentStatusMaintenance
	require.NoError(t, store.Equipment.Update(ctx, e))

	r := activeRental(equipmentID)
	_, err = svc.CreateRental(ctx, &r, nil)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestReturnRental(t *testing.T) {
	cases := []struct {
		condition  string
		wantStatus domain.EquipmentStatus
	}{
		{"Excellent", domain.EquipmentStatusAvailable},
		{"Good", domain.EquipmentStatusAvailable},
		{"Fair", domain.EquipmentStatusMaintenance},
		{"Damaged", domain.EquipmentStatusMaintenance},
	}

	for _, tc := range cases {
		t.Run("condition "+tc.condition, func(t *testing.T) {
			ctx := context.Background()
			svc, store, equipmentID := newRentalFixture(t)

			r := activeRental(equipmentID)
			id, err := svc.CreateRental(ctx, &r, nil)
			require.NoError(t, err)

			returned, err := svc.ReturnRental(ctx, id, ReturnDetails{
				ReturnDate:        "2024-06-07",
				Condition:         tc.condition,
				AdditionalCharges: 25,
			})
			require.NoError(t, err)
			assert.Equal(t, domain.RentalStatusReturned, returned.Status)
			assert.Equal(t, "2024-06-07", returned.ActualReturnDate)
			require.NotNil(t, returned.AdditionalCharges)
			assert.Equal(t, 25.0, *returned.AdditionalCharges)

			e, err := store.Equipment.GetByID(ctx, equipmentID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, e.Status)
		})
	}
}

func TestReturnRentalRejectsAlreadyReturned(t *testing.T) {
	ctx := context.Background()
	svc, _, equipmentID := newRentalFixture(t)

	r := activeRental(equipmentID)
	id, err := svc.CreateRental(ctx, &r, nil)
	require.NoError(t, err)

	_, err = svc.ReturnRental(ctx, id, ReturnDetails{ReturnDate: "2024-06-07", Condition: "Good"})
	require.NoError(t, err)

	_, err = svc.ReturnRental(ctx, id, ReturnDetails{ReturnDate: "2024-06-08", Condition: "Good"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestExtendRental(t *testing.T) {
	ctx := context.Background()
	svc, _, equipmentID := newRentalFixture(t)

	r := activeRental(equipmentID)
	id, err := svc.CreateRental(ctx, &r, nil)
	require.NoError(t, err)

	require.NoError(t, svc.ExtendRental(ctx, id, "2024-06-20"))

	extended, err := svc.GetRental(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-20", extended.ExpectedReturnDate)

	assert.Error(t, svc.ExtendRental(ctx, id, "not-a-date"))
}

func TestDeleteEquipmentCascadesRentals(t *testing.T) {
	ctx := context.Background()
	store, err := csvstore.NewStore(t.TempDir())
	require.NoError(t, err)

	equipmentSvc := NewEquipmentService(store.Equipment, store.Rentals)
	rentalSvc := NewRentalService(store.Rentals, store.Equipment)

	e := domain.Equipment{Name: "Cement Mixer", Category: "Concrete", Status: domain.EquipmentStatusAvailable, DailyRate: 40}
	equipmentID, err := store.Equipment.Add(ctx, &e)
	require.NoError(t, err)

	r := activeRental(equipmentID)
	_, err = rentalSvc.CreateRental(ctx, &r, nil)
	require.NoError(t, err)

	require.NoError(t, equipmentSvc.DeleteEquipment(ctx, equipmentID))

	rentals, err := store.Rentals.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rentals)
}
