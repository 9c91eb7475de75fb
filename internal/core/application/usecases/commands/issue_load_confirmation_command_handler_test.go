package commands_test

import (
	"testing"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/model/transport"
	"doctrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookedRequest(t *testing.T, invoices ...*invoice.Invoice) *transport.TransportRequest {
	t.Helper()
	request, err := services.NewTransportBooker().Book(kernel.NewUUID(), newTransporter(t), invoices, fixtureTime, "Ndola", fixtureTime)
	require.NoError(t, err)
	return request
}

func TestIssueLoadConfirmationCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	first := plannedInvoice(t, "INV-1")
	second := plannedInvoice(t, "INV-2")
	request := bookedRequest(t, first, second)

	cmd, err := commands.NewIssueLoadConfirmationCommand(kernel.NewUUID(), request.ID(), loadDetails(), "planner")
	require.NoError(t, err)

	mockInvRepo := new(MockInvoiceRepository)
	mockTransportRepo := new(MockTransportRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InvoiceRepository").Return(mockInvRepo).Once(),
		mockUoW.On("TransportRepository").Return(mockTransportRepo).Once(),
		mockTransportRepo.On("GetTransportRequest", ctx, request.ID()).Return(request, nil).Once(),
		mockInvRepo.On("GetMany", ctx, request.InvoiceIDs()).Return([]*invoice.Invoice{first, second}, nil).Once(),
		mockTransportRepo.On("AddLoadConfirmation", ctx, mock.AnythingOfType("*transport.LoadConfirmation")).Return(nil).Once(),
		mockTransportRepo.On("UpdateTransportRequest", ctx, request).Return(nil).Once(),
		mockInvRepo.On("Update", ctx, first).Return(nil).Once(),
		mockInvRepo.On("Update", ctx, second).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewIssueLoadConfirmationCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockInvRepo.AssertExpectations(t)
	mockTransportRepo.AssertExpectations(t)

	assert.Equal(t, transport.Confirmed, request.Status())
	for _, inv := range []*invoice.Invoice{first, second} {
		assert.Equal(t, invoice.Loading, inv.Stage())
		require.NotNil(t, inv.LoadConfirmationID())
		assert.True(t, inv.LoadConfirmationID().IsEqual(cmd.ConfirmationID()))
	}
}

func TestIssueLoadConfirmationCommandHandler_Handle_MissingDriver(t *testing.T) {
	// Arrange
	ctx := t.Context()
	inv := plannedInvoice(t, "INV-1")
	request := bookedRequest(t, inv)

	details := loadDetails()
	details.DriverName = ""
	cmd, err := commands.NewIssueLoadConfirmationCommand(kernel.NewUUID(), request.ID(), details, "planner")
	require.NoError(t, err)

	mockInvRepo := new(MockInvoiceRepository)
	mockTransportRepo := new(MockTransportRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InvoiceRepository").Return(mockInvRepo).Once(),
		mockUoW.On("TransportRepository").Return(mockTransportRepo).Once(),
		mockTransportRepo.On("GetTransportRequest", ctx, request.ID()).Return(request, nil).Once(),
		mockInvRepo.On("GetMany", ctx, request.InvoiceIDs()).Return([]*invoice.Invoice{inv}, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewIssueLoadConfirmationCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	mockUoW.AssertExpectations(t)
	assert.Equal(t, transport.Requested, request.Status())
	assert.Equal(t, invoice.TransportPlanning, inv.Stage())
}
