package export

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"whites-admin-backend/internal/domain"
)

func sampleTables() []*domain.Table {
	return []*domain.Table{
		{
			Name:    "vehicles",
			Columns: []string{"id", "make", "model"},
			Rows: [][]string{
				{"abc12345", "Ford", "Transit"},
				{"def67890", "Iveco", "Daily"},
			},
		},
		{
			Name:    "machines",
			Columns: []string{"id", "make"},
		},
	}
}

func TestToCSV(t *testing.T) {
	data, err := ToCSV(sampleTables()[0])
	require.NoError(t, err)
	assert.Equal(t, "id,make,model\nabc12345,Ford,Transit\ndef67890,Iveco,Daily\n", string(data))
}

func TestToCSVEmptyTableIsHeaderOnly(t *testing.T) {
	data, err := ToCSV(sampleTables()[1])
	require.NoError(t, err)
	assert.Equal(t, "id,make\n", string(data))
}

func TestToWorkbookOmitsEmptyTables(t *testing.T) {
	data, err := ToWorkbook(sampleTables())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"vehicles"}, f.GetSheetList())

	rows, err := f.GetRows("vehicles")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "make", "model"}, rows[0])
	assert.Equal(t, []string{"abc12345", "Ford", "Transit"}, rows[1])
}

func TestToZipDeterministicOrder(t *testing.T) {
	blobs := map[string][]byte{
		"b.csv": []byte("bbb"),
		"a.csv": []byte("aaa"),
	}
	data, err := ToZip(blobs)
	require.NoError(t, err)

	again, err := ToZip(blobs)
	require.NoError(t, err)
	assert.Equal(t, data, again)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "a.csv", zr.File[0].Name)
	assert.Equal(t, "b.csv", zr.File[1].Name)
}

func TestTablesToZipRoundTrip(t *testing.T) {
	data, err := TablesToZip(sampleTables())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	byName := make(map[string][]byte)
	for _, zf := range zr.File {
		rc, err := zf.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		byName[zf.Name] = content
	}

	assert.Equal(t, "id,make,model\nabc12345,Ford,Transit\ndef67890,Iveco,Daily\n", string(byName["vehicles.csv"]))
	assert.Equal(t, "id,make\n", string(byName["machines.csv"]))
}
