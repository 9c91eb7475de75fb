package commands_test

import (
	"testing"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func awaitingDocument(t *testing.T, docType document.Type) *document.Document {
	t.Helper()
	doc, err := document.NewDocument(kernel.NewUUID(), docType, "documents/x.pdf", "x.pdf", "application/pdf",
		kernel.NewUUID().String(), fixtureTime)
	require.NoError(t, err)
	return doc
}

func TestReceiveExtractionCommandHandler_Handle_StagesForReview(t *testing.T) {
	// Arrange
	ctx := t.Context()
	doc := awaitingDocument(t, document.UnknownType)

	cmd, err := commands.NewReceiveExtractionCommand(doc.Reference(), "packing_list",
		map[string]string{document.FieldInvoiceNumber: "INV-1001"},
		[]document.LineItem{{Description: "Copper cathodes", Quantity: decimal.NewFromInt(2), GrossWeight: decimal.NewFromInt(900)}},
		"")
	require.NoError(t, err)

	mockRepo := new(MockDocumentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockDocumentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DocumentRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByReference", ctx, doc.Reference()).Return(doc, nil).Once(),
		mockRepo.On("Update", ctx, doc).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReceiveExtractionCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)

	assert.False(t, result.Duplicate)
	assert.Equal(t, document.PendingReview, result.Status)
	assert.Equal(t, document.PackingList, doc.Type())
	assert.Equal(t, "INV-1001", doc.Fields()[document.FieldInvoiceNumber])
	assert.Len(t, doc.Extraction().LineItems, 1)
}

func TestReceiveExtractionCommandHandler_Handle_Failure(t *testing.T) {
	// Arrange
	ctx := t.Context()
	doc := awaitingDocument(t, document.CommercialInvoice)

	cmd, err := commands.NewReceiveExtractionCommand(doc.Reference(), "", nil, nil, "unreadable scan")
	require.NoError(t, err)

	mockRepo := new(MockDocumentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockDocumentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DocumentRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByReference", ctx, doc.Reference()).Return(doc, nil).Once(),
		mockRepo.On("Update", ctx, doc).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReceiveExtractionCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, document.ExtractionFailed, result.Status)
	assert.Equal(t, "unreadable scan", doc.FailureReason())
}

func TestReceiveExtractionCommandHandler_Handle_DuplicateCallback(t *testing.T) {
	// Arrange
	ctx := t.Context()
	doc := pendingDocument(t, document.CommercialInvoice, map[string]string{document.FieldInvoiceNumber: "INV-1"})

	cmd, err := commands.NewReceiveExtractionCommand(doc.Reference(), "", map[string]string{
		document.FieldInvoiceNumber: "INV-2",
	}, nil, "")
	require.NoError(t, err)

	mockRepo := new(MockDocumentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockDocumentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DocumentRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByReference", ctx, doc.Reference()).Return(doc, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReceiveExtractionCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	assert.True(t, result.Duplicate)
	assert.Equal(t, document.PendingReview, result.Status)
	assert.Equal(t, "INV-1", doc.Fields()[document.FieldInvoiceNumber])
}

func TestReceiveExtractionCommandHandler_Handle_UnknownReference(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewReceiveExtractionCommand("nope", "", nil, nil, "")
	require.NoError(t, err)

	mockRepo := new(MockDocumentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockDocumentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DocumentRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByReference", ctx, "nope").Return(nil, errs.NewObjectNotFoundError("extraction reference", "nope")).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReceiveExtractionCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewReceiveExtractionCommand_Validation(t *testing.T) {
	_, err := commands.NewReceiveExtractionCommand(" ", "", nil, nil, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewReceiveExtractionCommand("ref", "bill_of_lading", nil, nil, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
