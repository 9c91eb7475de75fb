package commands_test

import (
	"errors"
	"testing"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const callbackURL = "https://doctrack.example/api/v1/extractions"

func TestUploadDocumentCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	content := []byte("%PDF-1.7")
	cmd, err := commands.NewUploadDocumentCommand(kernel.NewUUID(), document.CommercialInvoice,
		"../INV-1001.pdf", "application/pdf", content)
	require.NoError(t, err)
	require.Equal(t, "INV-1001.pdf", cmd.Filename())

	mockRepo := new(MockDocumentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockDocumentUoWFactory)
	mockStore := new(MockFileStore)
	mockExtraction := new(MockExtractionClient)

	var registered *document.Document
	mock.InOrder(
		mockStore.On("Put", ctx, cmd.FileKey(), "application/pdf", mock.Anything, int64(len(content))).Return(nil).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DocumentRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*document.Document")).Run(func(args mock.Arguments) {
			registered = args.Get(1).(*document.Document)
		}).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
		mockStore.On("PresignGet", ctx, cmd.FileKey()).Return("https://files.example/signed", nil).Once(),
		mockExtraction.On("RequestExtraction", ctx, mock.MatchedBy(func(req ports.ExtractionRequest) bool {
			return req.DocumentID == cmd.DocumentID().String() &&
				req.DocumentType == "commercial_invoice" &&
				req.FileURL == "https://files.example/signed" &&
				req.CallbackURL == callbackURL &&
				req.Reference != ""
		})).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUploadDocumentCommandHandler(mockFactory, mockStore, mockExtraction, callbackURL)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockStore.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockExtraction.AssertExpectations(t)

	require.NotNil(t, registered)
	assert.Equal(t, document.AwaitingExtraction, registered.Status())
	assert.Equal(t, cmd.FileKey(), registered.FileKey())
}

func TestUploadDocumentCommandHandler_Handle_ExtractionUnavailable(t *testing.T) {
	// Arrange
	ctx := t.Context()
	content := []byte("%PDF-1.7")
	cmd, err := commands.NewUploadDocumentCommand(kernel.NewUUID(), document.UnknownType, "scan.pdf", "", content)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", cmd.ContentType())

	stored, err := document.NewDocument(cmd.DocumentID(), document.UnknownType, cmd.FileKey(), "scan.pdf",
		cmd.ContentType(), "ref", fixtureTime)
	require.NoError(t, err)

	expectedError := errors.New("connection refused")
	registerRepo := new(MockDocumentRepository)
	registerUoW := new(MockUoW)
	failRepo := new(MockDocumentRepository)
	failUoW := new(MockUoW)
	mockFactory := new(MockDocumentUoWFactory)
	mockStore := new(MockFileStore)
	mockExtraction := new(MockExtractionClient)

	mockStore.On("Put", ctx, cmd.FileKey(), cmd.ContentType(), mock.Anything, int64(len(content))).Return(nil).Once()
	mockStore.On("PresignGet", ctx, cmd.FileKey()).Return("https://files.example/signed", nil).Once()
	mockExtraction.On("RequestExtraction", ctx, mock.MatchedBy(func(req ports.ExtractionRequest) bool {
		return req.DocumentType == ""
	})).Return(expectedError).Once()

	mockFactory.On("Create").Return(registerUoW).Once()
	mockFactory.On("Create").Return(failUoW).Once()

	mock.InOrder(
		registerUoW.On("Begin", ctx).Return(nil).Once(),
		registerUoW.On("DocumentRepository").Return(registerRepo).Once(),
		registerRepo.On("Add", ctx, mock.AnythingOfType("*document.Document")).Return(nil).Once(),
		registerUoW.On("Commit", ctx).Return(nil).Once(),
		registerUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mock.InOrder(
		failUoW.On("Begin", ctx).Return(nil).Once(),
		failUoW.On("DocumentRepository").Return(failRepo).Once(),
		failRepo.On("Get", ctx, cmd.DocumentID()).Return(stored, nil).Once(),
		failRepo.On("Update", ctx, stored).Return(nil).Once(),
		failUoW.On("Commit", ctx).Return(nil).Once(),
		failUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUploadDocumentCommandHandler(mockFactory, mockStore, mockExtraction, callbackURL)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, expectedError)
	mockFactory.AssertExpectations(t)
	registerUoW.AssertExpectations(t)
	failUoW.AssertExpectations(t)
	failRepo.AssertExpectations(t)
	assert.Equal(t, document.ExtractionFailed, stored.Status())
	assert.Contains(t, stored.FailureReason(), "connection refused")
}

func TestUploadDocumentCommandHandler_Handle_StoreError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	content := []byte("%PDF-1.7")
	cmd, err := commands.NewUploadDocumentCommand(kernel.NewUUID(), document.PackingList, "pl.pdf", "application/pdf", content)
	require.NoError(t, err)

	expectedError := errors.New("bucket unavailable")
	mockFactory := new(MockDocumentUoWFactory)
	mockStore := new(MockFileStore)
	mockStore.On("Put", ctx, cmd.FileKey(), "application/pdf", mock.Anything, int64(len(content))).Return(expectedError).Once()

	handler := commands.NewUploadDocumentCommandHandler(mockFactory, mockStore, new(MockExtractionClient), callbackURL)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, expectedError)
	mockStore.AssertExpectations(t)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestNewUploadDocumentCommand_Validation(t *testing.T) {
	_, err := commands.NewUploadDocumentCommand(kernel.NewUUID(), document.CommercialInvoice, "a.pdf", "", nil)
	require.Error(t, err)

	_, err = commands.NewUploadDocumentCommand(kernel.NewUUID(), document.CommercialInvoice, "a.pdf", "",
		make([]byte, 20<<20+1))
	require.Error(t, err)

	_, err = commands.NewUploadDocumentCommand(kernel.NewUUID(), document.CommercialInvoice, "  ", "", []byte("x"))
	require.Error(t, err)
}
