package document_test

import (
	"testing"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newDocument(t *testing.T, docType document.Type) *document.Document {
	t.Helper()
	d, err := document.NewDocument(kernel.NewUUID(), docType, "documents/a.pdf", "a.pdf", "application/pdf", "ext-1", now)
	require.NoError(t, err)
	return d
}

func TestNewDocument(t *testing.T) {
	t.Run("should await extraction", func(t *testing.T) {
		d := newDocument(t, document.UnknownType)

		require.NoError(t, d.Validate())
		assert.Equal(t, document.AwaitingExtraction, d.Status())
		assert.Equal(t, document.UnknownType, d.Type())
		assert.Equal(t, "ext-1", d.Reference())
		assert.Nil(t, d.InvoiceID())
	})

	t.Run("should join missing fields", func(t *testing.T) {
		d, err := document.NewDocument(kernel.UUID{}, document.PackingList, " ", "", "", "", now)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "file key")
		assert.Contains(t, err.Error(), "filename")
		assert.Contains(t, err.Error(), "extraction reference")
	})

	t.Run("should reject an invalid type", func(t *testing.T) {
		_, err := document.NewDocument(kernel.NewUUID(), document.Type(99), "k", "f", "", "r", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDocument_Stage(t *testing.T) {
	t.Run("detected type overrides the upload hint", func(t *testing.T) {
		d := newDocument(t, document.Other)
		ext := document.NewExtraction(map[string]string{"Invoice Number": " INV-1 "}, nil)

		require.NoError(t, d.Stage(document.CommercialInvoice, ext, now.Add(time.Minute)))

		assert.Equal(t, document.PendingReview, d.Status())
		assert.Equal(t, document.CommercialInvoice, d.Type())
		assert.Equal(t, map[string]string{document.FieldInvoiceNumber: "INV-1"}, d.Fields())
		assert.Equal(t, now.Add(time.Minute), d.UpdatedAt())
	})

	t.Run("untyped document needs a detected type", func(t *testing.T) {
		d := newDocument(t, document.UnknownType)

		err := d.Stage(document.UnknownType, document.Extraction{}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, document.AwaitingExtraction, d.Status())
	})

	t.Run("second staging is refused", func(t *testing.T) {
		d := newDocument(t, document.PackingList)
		require.NoError(t, d.Stage(document.UnknownType, document.Extraction{}, now))

		err := d.Stage(document.UnknownType, document.Extraction{}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDocument_Fail(t *testing.T) {
	d := newDocument(t, document.PackingList)

	require.NoError(t, d.Fail("", now))

	assert.Equal(t, document.ExtractionFailed, d.Status())
	assert.Equal(t, "extraction failed", d.FailureReason())
	assert.True(t, d.Status().IsFinal())
	require.Error(t, d.Fail("again", now))
}

func TestDocument_Acknowledge(t *testing.T) {
	t.Run("corrections override extracted fields", func(t *testing.T) {
		d := newDocument(t, document.CommercialInvoice)
		ext := document.NewExtraction(map[string]string{
			document.FieldInvoiceNumber: "INV-1",
			document.FieldCustomerName:  "ACME",
			document.FieldCurrency:      "USD",
		}, nil)
		require.NoError(t, d.Stage(document.UnknownType, ext, now))
		invoiceID := kernel.NewUUID()

		err := d.Acknowledge("alice", invoiceID, map[string]string{
			"Customer Name":        "Acme Mining Ltd",
			document.FieldCurrency: "",
		}, now)

		require.NoError(t, err)
		assert.Equal(t, document.Acknowledged, d.Status())
		assert.Equal(t, "alice", d.Reviewer())
		require.NotNil(t, d.InvoiceID())
		assert.True(t, d.InvoiceID().IsEqual(invoiceID))
		assert.Equal(t, map[string]string{
			document.FieldInvoiceNumber: "INV-1",
			document.FieldCustomerName:  "Acme Mining Ltd",
		}, d.Fields())
	})

	t.Run("requires a reviewer", func(t *testing.T) {
		d := newDocument(t, document.PackingList)
		require.NoError(t, d.Stage(document.UnknownType, document.Extraction{}, now))

		err := d.Acknowledge(" ", kernel.NewUUID(), nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, document.PendingReview, d.Status())
	})

	t.Run("only pending review documents", func(t *testing.T) {
		d := newDocument(t, document.PackingList)

		err := d.Acknowledge("alice", kernel.NewUUID(), nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDocument_Reject(t *testing.T) {
	d := newDocument(t, document.PackingList)
	require.NoError(t, d.Stage(document.UnknownType, document.Extraction{}, now))

	err := d.Reject("alice", "", now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, document.PendingReview, d.Status())

	require.NoError(t, d.Reject("alice", "blurred scan", now))
	assert.Equal(t, document.Rejected, d.Status())
	assert.Equal(t, "blurred scan", d.ReviewNote())
	require.Error(t, d.Acknowledge("bob", kernel.NewUUID(), nil, now))
}

func TestExtraction_Totals(t *testing.T) {
	ext := document.NewExtraction(nil, []document.LineItem{
		{Description: "Copper cathodes", Quantity: decimal.NewFromInt(10), GrossWeight: decimal.RequireFromString("1000.5")},
		{Description: "Pallets", Quantity: decimal.NewFromInt(2), GrossWeight: decimal.RequireFromString("40")},
	})

	assert.True(t, ext.TotalGrossWeight().Equal(decimal.RequireFromString("1040.5")))
	assert.True(t, ext.TotalQuantity().Equal(decimal.NewFromInt(12)))
	assert.Empty(t, ext.Fields)
}

func TestRestore(t *testing.T) {
	d := newDocument(t, document.CommercialInvoice)
	require.NoError(t, d.Stage(document.UnknownType, document.NewExtraction(map[string]string{"a": "b"}, nil), now))

	restored, err := document.Restore(d.Snapshot())

	require.NoError(t, err)
	assert.Equal(t, d.Snapshot(), restored.Snapshot())

	s := d.Snapshot()
	s.Status = document.Status(77)
	_, err = document.Restore(s)
	require.Error(t, err)
}

func TestParseType(t *testing.T) {
	ty, err := document.ParseType("Delivery_Note")
	require.NoError(t, err)
	assert.Equal(t, document.DeliveryNote, ty)

	_, err = document.ParseType("unknown")
	require.Error(t, err)
}
