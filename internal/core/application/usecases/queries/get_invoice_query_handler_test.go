package queries_test

import (
	"context"
	"testing"
	"time"

	"doctrack/internal/core/application/usecases/queries"
	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func TestGetInvoiceQueryHandler_Handle(t *testing.T) {
	t.Run("reports unmet conditions per action", func(t *testing.T) {
		inv, err := invoice.NewInvoice(kernel.NewUUID(), "INV-1001", fixtureTime)
		require.NoError(t, err)
		ciID := kernel.NewUUID()
		require.NoError(t, inv.AttachDocument(document.CommercialInvoice, ciID, fixtureTime))

		invoices := &MockInvoiceRepository{}
		invoices.On("Get", mock.Anything, inv.ID()).Return(inv, nil)
		handler := queries.NewGetInvoiceQueryHandler(MockUoWFactory{uow: &MockUoW{invoices: invoices}})

		query, err := queries.NewGetInvoiceQuery(inv.ID())
		require.NoError(t, err)
		result, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, "INV-1001", result.Number)
		assert.Equal(t, invoice.KeyAccounts, result.Stage)
		assert.Equal(t, invoice.KeyAccountsManager, result.Owner)
		assert.True(t, ciID.IsEqual(result.Documents[document.CommercialInvoice]))
		assert.False(t, result.Blocked)

		require.Len(t, result.Checklist, 1)
		item := result.Checklist[0]
		assert.Equal(t, invoice.SubmitToPlanning, item.Action)
		assert.Equal(t, invoice.TransportPlanning, item.To)
		assert.False(t, item.Ready)
		assert.Equal(t, []string{"packing list document missing"}, item.Unmet)
		invoices.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := kernel.NewUUID()
		invoices := &MockInvoiceRepository{}
		invoices.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("invoice", id.String()))
		handler := queries.NewGetInvoiceQueryHandler(MockUoWFactory{uow: &MockUoW{invoices: invoices}})

		query, _ := queries.NewGetInvoiceQuery(id)
		result, err := handler.Handle(context.Background(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, result)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := queries.NewGetInvoiceQuery(kernel.UUID{})
		require.Error(t, err)
	})
}
