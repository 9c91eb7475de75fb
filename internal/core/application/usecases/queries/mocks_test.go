package queries_test

import (
	"context"
	"database/sql"
	"testing"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/ports"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Only the read methods are mocked; calling anything else panics on the nil
// embedded interface.
type MockInvoiceRepository struct {
	ports.InvoiceRepository
	mock.Mock
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

type MockDocumentRepository struct {
	ports.DocumentRepository
	mock.Mock
}

func (m *MockDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	args := m.Called(ctx, id)
	doc, _ := args.Get(0).(*document.Document)
	return doc, args.Error(1)
}

type MockUoW struct {
	ports.UnitOfWork
	invoices  ports.InvoiceRepository
	documents ports.DocumentRepository
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository   { return m.invoices }
func (m *MockUoW) DocumentRepository() ports.DocumentRepository { return m.documents }

type MockUoWFactory struct{ uow *MockUoW }

func (f MockUoWFactory) Create() ports.UnitOfWork { return f.uow }

type MockFileStore struct {
	ports.FileStore
	mock.Mock
}

func (m *MockFileStore) PresignGet(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	db, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock, mockDB
}
