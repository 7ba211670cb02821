package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whites-admin-backend/internal/domain"
)

func testVehicle(whitesID string) domain.Vehicle {
	return domain.Vehicle{
		WhitesID:     whitesID,
		Make:         "Ford",
		Model:        "Transit",
		Year:         2019,
		Weight:       3500,
		LicensePlate: "AB12CDE",
		VehicleType:  "Van",
		Status:       domain.VehicleStatusOffHire,
		Mileage:      42000,
	}
}

func TestNewStoreCreatesDataFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := NewStore(dir)
	require.NoError(t, err)

	for _, name := range []string{"vehicles.csv", "machines.csv", "maintenance.csv", "equipment.csv", "rentals.csv"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to exist", name)
		assert.NotEmpty(t, data, "expected %s to carry a header row", name)
	}
}

func TestVehicleRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	v := testVehicle("WH-001")
	id, err := store.Vehicles.Add(ctx, &v)
	require.NoError(t, err)
	assert.Len(t, id, 8)
	assert.Equal(t, id, v.ID)

	loaded, err := store.Vehicles.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, v, *loaded)

	loaded.Mileage = 43210.5
	loaded.Status = domain.VehicleStatusOnHire
	require.NoError(t, store.Vehicles.Update(ctx, loaded))

	again, err := store.Vehicles.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 43210.5, again.Mileage)
	assert.Equal(t, domain.VehicleStatusOnHire, again.Status)
}

func TestUpdateUnknownIDMutatesNothing(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	v := testVehicle("WH-001")
	_, err = store.Vehicles.Add(ctx, &v)
	require.NoError(t, err)

	ghost := testVehicle("WH-999")
	ghost.ID = "deadbeef"
	err = store.Vehicles.Update(ctx, &ghost)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "deadbeef", notFound.ID)

	all, err := store.Vehicles.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "WH-001", all[0].WhitesID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	v := testVehicle("WH-001")
	id, err := store.Vehicles.Add(ctx, &v)
	require.NoError(t, err)

	require.NoError(t, store.Vehicles.Delete(ctx, id))
	require.NoError(t, store.Vehicles.Delete(ctx, id))
	require.NoError(t, store.Vehicles.Delete(ctx, "never-existed"))

	all, err := store.Vehicles.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAbsentFileReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(dir, "vehicles.csv")))

	all, err := store.Vehicles.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCorruptFileSurfacesStorageError(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	t.Run("wrong header", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "vehicles.csv"), []byte("foo,bar\n1,2\n"), 0o644))
		_, err := store.Vehicles.LoadAll(ctx)
		var storageErr *domain.StorageReadError
		require.ErrorAs(t, err, &storageErr)
	})

	t.Run("unparseable cell", func(t *testing.T) {
		content := "id,whites_id,make,model,year,weight,license_plate,vehicle_type,status,mileage,defects,notes\n" +
			"abc,WH-001,Ford,Transit,not-a-year,3500,AB12CDE,Van,Off Hire,42000,,\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "vehicles.csv"), []byte(content), 0o644))
		_, err := store.Vehicles.LoadAll(ctx)
		var storageErr *domain.StorageReadError
		require.ErrorAs(t, err, &storageErr)
		assert.Contains(t, storageErr.Error(), "row 2")
	})
}

func TestDecodeHandlesFloatFormattedYear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	content := "id,whites_id,make,model,year,weight,license_plate,vehicle_type,status,mileage,defects,notes\n" +
		"abc12345,WH-001,Ford,Transit,2019.0,3500,AB12CDE,Van,Off Hire,42000,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vehicles.csv"), []byte(content), 0o644))

	all, err := store.Vehicles.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2019, all[0].Year)
}

func TestVehicleImportBulkPartialSuccess(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	existing := testVehicle("WH-001")
	_, err = store.Vehicles.Add(ctx, &existing)
	require.NoError(t, err)

	invalid := testVehicle("WH-003")
	invalid.Year = 1850

	report, err := store.Vehicles.ImportBulk(ctx, []domain.Vehicle{
		testVehicle("WH-002"),
		testVehicle("WH-001"), // duplicate whites_id
		invalid,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 2, report.Failed)
	assert.Len(t, report.Errors, 2)

	all, err := store.Vehicles.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportBulkRejectsBatchInternalDuplicates(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	report, err := store.Vehicles.ImportBulk(ctx, []domain.Vehicle{
		testVehicle("WH-010"),
		testVehicle("WH-010"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Failed)
}

func TestMaintenanceDeleteByVehicle(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for _, vehicleID := range []string{"veh-a", "veh-a", "veh-b"} {
		rec := domain.MaintenanceRecord{
			VehicleID:   vehicleID,
			Date:        "2024-03-01",
			Type:        "Oil Change",
			Description: "Routine service",
			Cost:        80,
			Mileage:     10000,
		}
		_, err := store.Maintenance.Add(ctx, &rec)
		require.NoError(t, err)
	}

	require.NoError(t, store.Maintenance.DeleteByVehicle(ctx, "veh-a"))

	all, err := store.Maintenance.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "veh-b", all[0].VehicleID)
}

func TestOptionalFloatColumnsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	weekly := 250.0
	e := domain.Equipment{
		Name:       "Mini Digger",
		Category:   "Excavation",
		Status:     domain.EquipmentStatusAvailable,
		DailyRate:  65,
		WeeklyRate: &weekly,
	}
	id, err := store.Equipment.Add(ctx, &e)
	require.NoError(t, err)

	loaded, err := store.Equipment.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, loaded.WeeklyRate)
	assert.Equal(t, 250.0, *loaded.WeeklyRate)
	assert.Nil(t, loaded.PurchasePrice)
}

func TestTablesStableOrder(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	tables, err := store.Tables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 5)

	names := make([]string, 0, len(tables))
	for _, tbl := range tables {
		names = append(names, tbl.Name)
	}
	assert.Equal(t, []string{"vehicles", "machines", "maintenance", "equipment", "rentals"}, names)
}
