package commands_test

import (
	"testing"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func drcInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	inv := newInvoice(t, "INV-CD-1")
	value, err := kernel.NewAmount(decimal.NewFromInt(5000), "USD")
	require.NoError(t, err)
	require.NoError(t, inv.UpdateDetails("Kolwezi Mining", "CD", &value, fixtureTime))
	return inv
}

func TestRecordFeriCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		reference string
		expected  invoice.FeriStatus
	}{
		{name: "applied", status: "applied", expected: invoice.FeriApplied},
		{name: "approved with reference", status: "approved", reference: "FERI-2025-0042", expected: invoice.FeriApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctx := t.Context()
			inv := drcInvoice(t)

			cmd, err := commands.NewRecordFeriCommand(inv.ID(), tt.status, tt.reference, "feri-desk")
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

			handler := commands.NewRecordFeriCommandHandler(mockFactory)

			// Act
			err = handler.Handle(ctx, cmd)

			// Assert
			require.NoError(t, err)
			mockUoW.AssertExpectations(t)
			mockRepo.AssertExpectations(t)
			assert.Equal(t, tt.expected, inv.Feri())
		})
	}
}

func TestRecordFeriCommandHandler_Handle_ApprovalNeedsReference(t *testing.T) {
	// Arrange
	ctx := t.Context()
	inv := drcInvoice(t)

	cmd, err := commands.NewRecordFeriCommand(inv.ID(), "approved", "", "feri-desk")
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

	handler := commands.NewRecordFeriCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	mockUoW.AssertExpectations(t)
	assert.Equal(t, invoice.FeriPending, inv.Feri())
}

func TestRecordFeriCommandHandler_Handle_BlockedApprovalIsPersisted(t *testing.T) {
	// Arrange
	ctx := t.Context()
	inv := drcInvoice(t)
	require.NoError(t, inv.SetRequirements(true, false, true, fixtureTime))
	require.NoError(t, inv.AttachDocument(document.CommercialInvoice, kernel.NewUUID(), fixtureTime))
	require.NoError(t, inv.AttachDocument(document.PackingList, kernel.NewUUID(), fixtureTime))
	require.NoError(t, inv.Perform(invoice.SubmitToPlanning, "kam", fixtureTime))
	require.NoError(t, inv.AttachLoadConfirmation(kernel.NewUUID(), fixtureTime))
	require.NoError(t, inv.Perform(invoice.ConfirmLoad, "planner", fixtureTime))
	require.NoError(t, inv.RecordInspection(invoice.QC, invoice.InspectionPassed, fixtureTime))
	require.NoError(t, inv.Perform(invoice.MarkReadyDispatch, "ops", fixtureTime))
	s := inv.Snapshot()
	s.QC = invoice.InspectionPending
	inv, err := invoice.Restore(s)
	require.NoError(t, err)

	cmd, err := commands.NewRecordFeriCommand(inv.ID(), "approved", "FERI-2025-0042", "feri-desk")
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

	handler := commands.NewRecordFeriCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	var blocked *errs.TransitionIsBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, []string{"QC inspection not passed"}, blocked.Unmet)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	assert.Equal(t, invoice.FeriApproved, inv.Feri())
	assert.Equal(t, invoice.FeriApplication, inv.Stage())
	assert.True(t, inv.IsBlocked())
}

func TestSetRequirementsCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	inv := newInvoice(t, "INV-1")

	cmd, err := commands.NewSetRequirementsCommand(inv.ID(), true, true, false)
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

	handler := commands.NewSetRequirementsCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
	assert.Equal(t, invoice.InspectionPending, inv.QC())
	assert.Equal(t, invoice.InspectionPending, inv.BV())
	assert.Equal(t, invoice.FeriNotRequired, inv.Feri())
}

func TestRecordInspectionCommandHandler_Handle_OutsideLoading(t *testing.T) {
	// Arrange
	ctx := t.Context()
	inv := newInvoice(t, "INV-1")
	require.NoError(t, inv.SetRequirements(true, false, false, fixtureTime))

	cmd, err := commands.NewRecordInspectionCommand(inv.ID(), "qc", "passed")
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

	handler := commands.NewRecordInspectionCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	mockUoW.AssertExpectations(t)
	assert.Equal(t, invoice.InspectionPending, inv.QC())
}

func TestNewRecordInspectionCommand_Validation(t *testing.T) {
	_, err := commands.NewRecordInspectionCommand(kernel.NewUUID(), "sgs", "passed")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewRecordInspectionCommand(kernel.NewUUID(), "qc", "required")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
