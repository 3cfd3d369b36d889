package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiber-tracker/models"
)

func TestTransferSingleMovesProduct(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addOutbound("LC-OUT-000001")
	store.addInboundProduct(10, "Router X1", "SN-001", "1200", models.StatusIn)

	svc := newTestTransferService(store, nil)

	created, err := svc.TransferSingle("SN-001", "LC-OUT-000001")
	require.NoError(t, err)

	assert.Equal(t, "SN-001", created.SerialNumber)
	assert.Equal(t, "Router X1", created.Product)
	assert.Equal(t, "1200", created.Value)
	assert.Equal(t, int64(10), created.OriginInboundId, "outbound product must point at the origin inbound shipment")
	assert.Len(t, created.Barcode, 12)

	assert.Equal(t, models.StatusOut, store.inboundProductBySerial("SN-001").Status)
	assert.Len(t, store.outboundProducts, 1)
}

func TestTransferSingleRejectsAssignedUnit(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addOutbound("LC-OUT-000001")
	store.addInboundProduct(10, "Router X1", "SN-001", "1200", models.StatusIn)

	svc := newTestTransferService(store, nil)

	_, err := svc.TransferSingle("SN-001", "LC-OUT-000001")
	require.NoError(t, err)

	_, err = svc.TransferSingle("SN-001", "LC-OUT-000001")
	var assigned *AlreadyAssignedError
	require.ErrorAs(t, err, &assigned)
	assert.Equal(t, "SN-001", assigned.Serial)

	assert.Len(t, store.outboundProducts, 1, "second transfer must not create another row")
}

func TestTransferSingleUnknownOutbound(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addInboundProduct(10, "Router X1", "SN-001", "1200", models.StatusIn)

	svc := newTestTransferService(store, nil)

	_, err := svc.TransferSingle("SN-001", "LC-OUT-999999")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	assert.Equal(t, models.StatusIn, store.inboundProductBySerial("SN-001").Status)
	assert.Empty(t, store.outboundProducts)
}

func TestTransferSingleUnknownSerial(t *testing.T) {
	store := newFakeStore()
	store.addOutbound("LC-OUT-000001")

	svc := newTestTransferService(store, nil)

	_, err := svc.TransferSingle("SN-404", "LC-OUT-000001")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, store.outboundProducts)
}

func TestTransferSingleValidatesInput(t *testing.T) {
	svc := newTestTransferService(newFakeStore(), nil)

	_, err := svc.TransferSingle("  ", "LC-OUT-000001")
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	_, err = svc.TransferSingle("SN-001", "")
	assert.ErrorAs(t, err, &invalid)
}

func TestTransferBatchPartitionsSerials(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addOutbound("LC-OUT-000001")
	store.addInboundProduct(10, "Router X1", "SN-A", "100", models.StatusIn)
	store.addInboundProduct(10, "Router X1", "SN-B", "100", models.StatusOut)

	svc := newTestTransferService(store, nil)

	result, err := svc.TransferBatch([]string{"SN-A", "SN-B", "SN-C"}, "LC-OUT-000001")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, []string{"SN-A"}, result.Moved)
	assert.Equal(t, []string{"SN-B"}, result.AlreadyAssigned)
	assert.Equal(t, []string{"SN-C"}, result.NotFound)

	assert.Equal(t, models.StatusOut, store.inboundProductBySerial("SN-A").Status)
	assert.Len(t, store.outboundProducts, 1)
}

func TestTransferBatchNothingMovable(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addOutbound("LC-OUT-000001")
	store.addInboundProduct(10, "Router X1", "SN-B", "100", models.StatusOut)

	svc := newTestTransferService(store, nil)

	result, err := svc.TransferBatch([]string{"SN-B", "SN-C"}, "LC-OUT-000001")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Zero(t, result.Created)
	assert.Equal(t, []string{"SN-B"}, result.AlreadyAssigned)
	assert.Equal(t, []string{"SN-C"}, result.NotFound)
	assert.Empty(t, store.outboundProducts, "an unmovable batch must not write")
}

func TestTransferBatchDeduplicatesInput(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addOutbound("LC-OUT-000001")
	store.addInboundProduct(10, "Router X1", "SN-A", "100", models.StatusIn)

	svc := newTestTransferService(store, nil)

	result, err := svc.TransferBatch([]string{"SN-A", " SN-A ", "SN-A"}, "LC-OUT-000001")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Len(t, store.outboundProducts, 1)
}

func TestTransferBatchEmptyInput(t *testing.T) {
	svc := newTestTransferService(newFakeStore(), nil)

	_, err := svc.TransferBatch([]string{"  ", ""}, "LC-OUT-000001")
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestTransferBatchUnknownOutbound(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addInboundProduct(10, "Router X1", "SN-A", "100", models.StatusIn)

	svc := newTestTransferService(store, nil)

	_, err := svc.TransferBatch([]string{"SN-A"}, "LC-OUT-404")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, models.StatusIn, store.inboundProductBySerial("SN-A").Status)
}

func TestTransferBatchRollsBackOnFault(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addOutbound("LC-OUT-000001")
	store.addInboundProduct(10, "Router X1", "SN-A", "100", models.StatusIn)
	store.addInboundProduct(10, "Router X1", "SN-B", "100", models.StatusIn)

	repo := &fakeRepo{store: store, failMarkBulk: errors.New("connection reset")}
	svc := NewTransferService(&fakeTx{repo: repo}, repo, nil)

	_, err := svc.TransferBatch([]string{"SN-A", "SN-B"}, "LC-OUT-000001")
	var txErr *TransactionError
	require.ErrorAs(t, err, &txErr)

	assert.Empty(t, store.outboundProducts, "failed batch must leave no outbound rows")
	assert.Equal(t, models.StatusIn, store.inboundProductBySerial("SN-A").Status)
	assert.Equal(t, models.StatusIn, store.inboundProductBySerial("SN-B").Status)
}

func TestReturnProductRestoresInboundStatus(t *testing.T) {
	store := newFakeStore()
	store.addInbound(10, "Acme", false)
	store.addOutbound("LC-OUT-000001")
	store.addInboundProduct(10, "Router X1", "SN-001", "1200", models.StatusIn)

	svc := newTestTransferService(store, nil)

	created, err := svc.TransferSingle("SN-001", "LC-OUT-000001")
	require.NoError(t, err)
	require.Equal(t, models.StatusOut, store.inboundProductBySerial("SN-001").Status)

	require.NoError(t, svc.ReturnProduct(created.ID))

	assert.Empty(t, store.outboundProducts)
	assert.Equal(t, models.StatusIn, store.inboundProductBySerial("SN-001").Status)
}

func TestReturnProductUnknownID(t *testing.T) {
	svc := newTestTransferService(newFakeStore(), nil)

	err := svc.ReturnProduct(999)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestTransferNotifiesSubscribedClient(t *testing.T) {
	store := newFakeStore()
	store.addClient("Acme", "ops@acme.example")
	store.addInbound(10, "Acme", true)
	store.addOutbound("LC-OUT-000001")
	store.addInboundProduct(10, "Router X1", "SN-001", "1200", models.StatusIn)

	mailer := &recordingMailer{}
	svc := newTestTransferService(store, mailer)

	_, err := svc.TransferSingle("SN-001", "LC-OUT-000001")
	require.NoError(t, err)

	require.Len(t, mailer.notices, 1)
	assert.Equal(t, "ops@acme.example", mailer.notices[0].To)
	assert.Equal(t, "LC-OUT-000001", mailer.notices[0].OutboundNo)
	assert.Equal(t, []string{"SN-001"}, mailer.notices[0].Serials)
}

func TestTransferSkipsUnsubscribedClient(t *testing.T) {
	store := newFakeStore()
	store.addClient("Acme", "ops@acme.example")
	store.addInbound(10, "Acme", false)
	store.addOutbound("LC-OUT-000001")
	store.addInboundProduct(10, "Router X1", "SN-001", "1200", models.StatusIn)

	mailer := &recordingMailer{}
	svc := newTestTransferService(store, mailer)

	_, err := svc.TransferSingle("SN-001", "LC-OUT-000001")
	require.NoError(t, err)
	assert.Empty(t, mailer.notices)
}
