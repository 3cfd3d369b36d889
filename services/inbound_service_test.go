package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiber-tracker/models"
)

func TestNormalizeSerials(t *testing.T) {
	serials := NormalizeSerials("  SN-A\nSN-B\tSN-C   SN-A\r\nSN-B ")
	assert.Equal(t, []string{"SN-A", "SN-B", "SN-C"}, serials)

	assert.Empty(t, NormalizeSerials("   \n\t  "))
	assert.Empty(t, NormalizeSerials(""))
}

func TestAddSingleProduct(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)

	svc := newTestInboundService(store)

	created, err := svc.AddSingleProduct(10, "Router X1", " SN-001 ", "1200")
	require.NoError(t, err)

	assert.Equal(t, "SN-001", created.SerialNumber)
	assert.Equal(t, models.StatusIn, created.Status)
	assert.Len(t, created.Barcode, 12)
	assert.Len(t, store.inboundProducts, 1)
}

func TestAddSingleProductDuplicateSerial(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addInboundProduct(10, "Router X1", "SN-001", "1200", models.StatusIn)

	svc := newTestInboundService(store)

	_, err := svc.AddSingleProduct(10, "Router X1", "SN-001", "1200")
	var dup *DuplicateSerialError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "SN-001", dup.Serial)
	assert.Len(t, store.inboundProducts, 1)
}

func TestAddSingleProductUnknownInbound(t *testing.T) {
	svc := newTestInboundService(newFakeStore())

	_, err := svc.AddSingleProduct(404, "Router X1", "SN-001", "1200")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestAddBatchProductsSkipsExisting(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addInboundProduct(10, "Router X1", "SN-B", "1200", models.StatusIn)

	svc := newTestInboundService(store)

	result, err := svc.AddBatchProducts(10, "Router X1", "SN-A\nSN-B\nSN-C", "1200")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, []string{"SN-B"}, result.Skipped)
	assert.Len(t, store.inboundProducts, 3)
}

func TestAddBatchProductsAllDuplicates(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addInboundProduct(10, "Router X1", "SN-A", "1200", models.StatusIn)
	store.addInboundProduct(10, "Router X1", "SN-B", "1200", models.StatusIn)

	svc := newTestInboundService(store)

	_, err := svc.AddBatchProducts(10, "Router X1", "SN-A SN-B", "1200")
	require.ErrorIs(t, err, ErrAllDuplicates)
	assert.Len(t, store.inboundProducts, 2, "a fully duplicate batch must not write")
}

func TestAddBatchProductsEmptyBatch(t *testing.T) {
	svc := newTestInboundService(newFakeStore())

	_, err := svc.AddBatchProducts(10, "Router X1", "  \n ", "1200")
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestImportFromTableSkipsBadRows(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addInboundProduct(10, "Router X1", "SN-OLD", "1200", models.StatusIn)

	svc := newTestInboundService(store)

	result, err := svc.ImportFromTable(10, []ImportRow{
		{Product: "Router X1", SerialNumber: "SN-1", Value: "100"},
		{Product: "", SerialNumber: "SN-2", Value: "100"},
		{Product: "Router X1", SerialNumber: "", Value: "100"},
		{Product: "Router X1", SerialNumber: "SN-1", Value: "100"},
		{Product: "Router X1", SerialNumber: "SN-OLD", Value: "100"},
		{Product: " Switch S2 ", SerialNumber: " SN-3 ", Value: " 250 "},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 4, result.Skipped)

	created := store.inboundProductBySerial("SN-3")
	require.NotNil(t, created)
	assert.Equal(t, "Switch S2", created.Product)
	assert.Equal(t, "250", created.Value)
	assert.Equal(t, models.StatusIn, created.Status)
}

func TestImportFromTableEmpty(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)

	svc := newTestInboundService(store)

	result, err := svc.ImportFromTable(10, nil)
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Zero(t, result.Skipped)
}
