package queries_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"doctrack/internal/core/application/usecases/queries"
	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPendingReviewDocumentsQueryHandler_Handle(t *testing.T) {
	columns := []string{"id", "type", "filename", "reference", "extraction", "created_at"}
	created := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("decodes staged fields", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		first, second := kernel.NewUUID(), kernel.NewUUID()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM documents`)).
			WithArgs(int(document.PendingReview)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(first.String(), int(document.CommercialInvoice), "ci.pdf", "ref-1",
					[]byte(`{"fields":{"invoice_number":"INV-1001"},"line_items":null}`), created).
				AddRow(second.String(), int(document.PackingList), "pl.pdf", "ref-2", []byte(`{}`), created.Add(time.Minute)))

		result, err := queries.NewListPendingReviewDocumentsQueryHandler(db).
			Handle(context.Background(), queries.NewListPendingReviewDocumentsQuery())

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.True(t, first.IsEqual(result[0].ID))
		assert.Equal(t, document.CommercialInvoice, result[0].Type)
		assert.Equal(t, "INV-1001", result[0].Fields[document.FieldInvoiceNumber])
		assert.Equal(t, document.PackingList, result[1].Type)
		assert.NotNil(t, result[1].Fields)
		assert.Empty(t, result[1].Fields)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt extraction", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM documents`)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(kernel.NewUUID().String(), int(document.PackingList), "pl.pdf", "ref-1", []byte(`{`), created))

		result, err := queries.NewListPendingReviewDocumentsQueryHandler(db).
			Handle(context.Background(), queries.NewListPendingReviewDocumentsQuery())

		require.ErrorContains(t, err, "decode extraction")
		assert.Nil(t, result)
	})

	t.Run("query not constructed", func(t *testing.T) {
		_, err := queries.NewListPendingReviewDocumentsQueryHandler(nil).
			Handle(context.Background(), queries.ListPendingReviewDocumentsQuery{})

		require.ErrorIs(t, err, queries.ErrListPendingReviewDocumentsQueryIsNotConstructed)
	})
}
