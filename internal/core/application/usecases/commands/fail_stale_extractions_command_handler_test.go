package commands_test

import (
	"testing"
	"time"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/domain/model/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFailStaleExtractionsCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	first := awaitingDocument(t, document.CommercialInvoice)
	second := awaitingDocument(t, document.PackingList)

	cmd, err := commands.NewFailStaleExtractionsCommand(30 * time.Minute)
	require.NoError(t, err)

	mockRepo := new(MockDocumentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockDocumentUoWFactory)

	before := time.Now().UTC().Add(-30 * time.Minute)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DocumentRepository").Return(mockRepo).Once(),
		mockRepo.On("ListAwaitingExtractionBefore", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
			return !cutoff.Before(before)
		})).Return([]*document.Document{first, second}, nil).Once(),
		mockRepo.On("Update", ctx, first).Return(nil).Once(),
		mockRepo.On("Update", ctx, second).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewFailStaleExtractionsCommandHandler(mockFactory)

	// Act
	count, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	assert.Equal(t, 2, count)
	assert.Equal(t, document.ExtractionFailed, first.Status())
	assert.Equal(t, "no extraction result within 30m0s", second.FailureReason())
}

func TestFailStaleExtractionsCommandHandler_Handle_NothingStale(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewFailStaleExtractionsCommand(time.Hour)
	require.NoError(t, err)

	mockRepo := new(MockDocumentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockDocumentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DocumentRepository").Return(mockRepo).Once(),
		mockRepo.On("ListAwaitingExtractionBefore", ctx, mock.AnythingOfType("time.Time")).Return(nil, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewFailStaleExtractionsCommandHandler(mockFactory)

	// Act
	count, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Zero(t, count)
	mockUoW.AssertExpectations(t)
}

func TestNewFailStaleExtractionsCommand_RejectsNonPositiveTimeout(t *testing.T) {
	_, err := commands.NewFailStaleExtractionsCommand(0)
	require.Error(t, err)
}
