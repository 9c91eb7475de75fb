package commands_test

import (
	"testing"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPerformInvoiceActionCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	inv := newInvoice(t, "INV-1001")
	require.NoError(t, inv.AttachDocument(document.CommercialInvoice, kernel.NewUUID(), fixtureTime))
	require.NoError(t, inv.AttachDocument(document.PackingList, kernel.NewUUID(), fixtureTime))

	cmd, err := commands.NewPerformInvoiceActionCommand(inv.ID(), invoice.SubmitToPlanning, "kam")
	require.NoError(t, err)

	mockRepo := new(MockInvoiceRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockInvoiceUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InvoiceRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		mockRepo.On("Update", ctx, inv).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPerformInvoiceActionCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	assert.Equal(t, invoice.TransportPlanning, inv.Stage())
}

func TestPerformInvoiceActionCommandHandler_Handle_BlockedIsPersisted(t *testing.T) {
	// Arrange
	ctx := t.Context()
	inv := newInvoice(t, "INV-1001")

	cmd, err := commands.NewPerformInvoiceActionCommand(inv.ID(), invoice.SubmitToPlanning, "kam")
	require.NoError(t, err)

	mockRepo := new(MockInvoiceRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockInvoiceUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InvoiceRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		mockRepo.On("Update", ctx, inv).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPerformInvoiceActionCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrTransitionIsBlocked)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	assert.True(t, inv.IsBlocked())
	assert.Equal(t, invoice.KeyAccounts, inv.Stage())
	assert.ElementsMatch(t,
		[]invoice.Condition{invoice.CommercialInvoiceAttached, invoice.PackingListAttached},
		inv.BlockReasons())
}

func TestPerformInvoiceActionCommandHandler_Handle_ActionNotAvailable(t *testing.T) {
	// Arrange
	ctx := t.Context()
	inv := newInvoice(t, "INV-1001")

	cmd, err := commands.NewPerformInvoiceActionCommand(inv.ID(), invoice.Dispatch, "ops")
	require.NoError(t, err)

	mockRepo := new(MockInvoiceRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockInvoiceUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InvoiceRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPerformInvoiceActionCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewPerformInvoiceActionCommand_RejectsAutomaticActions(t *testing.T) {
	_, err := commands.NewPerformInvoiceActionCommand(kernel.NewUUID(), invoice.ConfirmLoad, "ops")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewPerformInvoiceActionCommand(kernel.NewUUID(), invoice.ApproveFeri, "feri")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
