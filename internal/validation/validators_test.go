package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whites-admin-backend/internal/domain"
)

func TestValidYear(t *testing.T) {
	current := time.Now().Year()

	cases := []struct {
		year int
		ok   bool
	}{
		{1899, false},
		{1900, true},
		{2015, true},
		{current, true},
		{current + 1, true},
		{current + 2, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("year_%d", tc.year), func(t *testing.T) {
			assert.Equal(t, tc.ok, ValidYear(tc.year))
		})
	}
}

func TestValidLicensePlate(t *testing.T) {
	t.Run("accepts common formats", func(t *testing.T) {
		assert.True(t, ValidLicensePlate("AB12 CDE"))
		assert.True(t, ValidLicensePlate("ab12cde"))
		assert.True(t, ValidLicensePlate("X1"))
	})

	t.Run("rejects bad input", func(t *testing.T) {
		assert.False(t, ValidLicensePlate(""))
		assert.False(t, ValidLicensePlate("A"))
		assert.False(t, ValidLicensePlate("TOOLONGPLATE"))
		assert.False(t, ValidLicensePlate("AB!@#"))
	})
}

func TestValidVIN(t *testing.T) {
	assert.True(t, ValidVIN("1HGBH41JXMN109186"))
	assert.False(t, ValidVIN("1HGBH41JXMN10918"))   // 16 chars
	assert.False(t, ValidVIN("1HGBH41JXMN109I86")) // contains I
	assert.False(t, ValidVIN(""))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-02-29"))
	assert.False(t, ValidDate("2023-02-29"))
	assert.False(t, ValidDate("29/02/2024"))
	assert.False(t, ValidDate(""))
}

func TestVehicleData(t *testing.T) {
	valid := func() *domain.Vehicle {
		return &domain.Vehicle{
			WhitesID:     "WH-001",
			Make:         "Ford",
			Model:        "Transit",
			Year:         2020,
			Weight:       3500,
			LicensePlate: "AB12CDE",
			VehicleType:  "Van",
			Status:       domain.VehicleStatusOffHire,
			Mileage:      42000,
		}
	}

	t.Run("clean record passes", func(t *testing.T) {
		assert.NoError(t, VehicleData(valid()))
	})

	t.Run("collects every failure reason", func(t *testing.T) {
		v := valid()
		v.Make = ""
		v.Year = 1850
		v.Weight = -1
		v.Mileage = -5

		err := VehicleData(v)
		require.Error(t, err)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Reasons, 4)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		v := valid()
		v.Status = "Parked"
		assert.Error(t, VehicleData(v))
	})
}

func TestMaintenanceData(t *testing.T) {
	valid := func() *domain.MaintenanceRecord {
		return &domain.MaintenanceRecord{
			VehicleID:   "abc123",
			Date:        "2024-06-15",
			Type:        "Oil Change",
			Description: "Routine service",
			Cost:        89.50,
			Mileage:     45000,
		}
	}

	t.Run("clean record passes", func(t *testing.T) {
		assert.NoError(t, MaintenanceData(valid()))
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		rec := valid()
		rec.Date = "15/06/2024"
		assert.Error(t, MaintenanceData(rec))
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		rec := valid()
		rec.Cost = -10
		assert.Error(t, MaintenanceData(rec))
	})
}

func TestRentalData(t *testing.T) {
	valid := func() *domain.Rental {
		return &domain.Rental{
			EquipmentID:        "eq1",
			CustomerName:       "Jo Bloggs",
			StartDate:          "2024-06-01",
			ExpectedReturnDate: "2024-06-08",
			RentalRate:         45,
			Status:             domain.RentalStatusActive,
		}
	}

	t.Run("clean record passes", func(t *testing.T) {
		assert.NoError(t, RentalData(valid()))
	})

	t.Run("return before start fails", func(t *testing.T) {
		r := valid()
		r.ExpectedReturnDate = "2024-05-30"
		assert.Error(t, RentalData(r))
	})

	t.Run("missing customer fails", func(t *testing.T) {
		r := valid()
		r.CustomerName = ""
		assert.Error(t, RentalData(r))
	})
}
