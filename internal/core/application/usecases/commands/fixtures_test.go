package commands_test

import (
	"testing"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/model/transport"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newInvoice(t *testing.T, number string) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(kernel.NewUUID(), number, fixtureTime)
	require.NoError(t, err)
	return inv
}

// plannedInvoice returns an invoice waiting at the transport planner with
// its details and packing filled in.
func plannedInvoice(t *testing.T, number string) *invoice.Invoice {
	t.Helper()
	inv := newInvoice(t, number)
	value, err := kernel.NewAmount(decimal.NewFromInt(1000), "USD")
	require.NoError(t, err)
	require.NoError(t, inv.UpdateDetails("ACME", "ZM", &value, fixtureTime))
	weight, err := kernel.NewWeight(decimal.NewFromInt(250))
	require.NoError(t, err)
	require.NoError(t, inv.UpdatePacking(weight, 3, fixtureTime))
	require.NoError(t, inv.AttachDocument(document.CommercialInvoice, kernel.NewUUID(), fixtureTime))
	require.NoError(t, inv.AttachDocument(document.PackingList, kernel.NewUUID(), fixtureTime))
	require.NoError(t, inv.Perform(invoice.SubmitToPlanning, "kam", fixtureTime))
	return inv
}

func newTransporter(t *testing.T) *transport.Transporter {
	t.Helper()
	tr, err := transport.NewTransporter(kernel.NewUUID(), "Trans Africa", "bookings@ta.example", "", fixtureTime)
	require.NoError(t, err)
	return tr
}

func newAgent(t *testing.T) *transport.Agent {
	t.Helper()
	a, err := transport.NewAgent(kernel.NewUUID(), "Border Clearing Ltd", "ops@bcl.example", "Kasumbalesa", fixtureTime)
	require.NoError(t, err)
	return a
}

func loadDetails() transport.LoadConfirmationSnapshot {
	return transport.LoadConfirmationSnapshot{
		TruckRegistration: "ABC 123",
		DriverName:        "J. Banda",
		LoadingDate:       fixtureTime,
	}
}

func pendingDocument(t *testing.T, docType document.Type, fields map[string]string) *document.Document {
	t.Helper()
	doc, err := document.NewDocument(kernel.NewUUID(), docType, "documents/x.pdf", "x.pdf", "application/pdf",
		kernel.NewUUID().String(), fixtureTime)
	require.NoError(t, err)
	require.NoError(t, doc.Stage(document.UnknownType, document.NewExtraction(fields, nil), fixtureTime))
	return doc
}
