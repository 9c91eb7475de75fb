package commands_test

import (
	"context"
	"io"
	"time"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/model/transport"
	"doctrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	args := m.Called(ctx, number)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, ids)
	invoices, _ := args.Get(0).([]*invoice.Invoice)
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) ListBlocked(ctx context.Context) ([]*invoice.Invoice, error) {
	args := m.Called(ctx)
	invoices, _ := args.Get(0).([]*invoice.Invoice)
	return invoices, args.Error(1)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, doc *document.Document) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockDocumentRepository) Update(ctx context.Context, doc *document.Document) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	args := m.Called(ctx, id)
	doc, _ := args.Get(0).(*document.Document)
	return doc, args.Error(1)
}

func (m *MockDocumentRepository) GetByReference(ctx context.Context, reference string) (*document.Document, error) {
	args := m.Called(ctx, reference)
	doc, _ := args.Get(0).(*document.Document)
	return doc, args.Error(1)
}

func (m *MockDocumentRepository) ListAwaitingExtractionBefore(ctx context.Context, cutoff time.Time) ([]*document.Document, error) {
	args := m.Called(ctx, cutoff)
	docs, _ := args.Get(0).([]*document.Document)
	return docs, args.Error(1)
}

type MockTransportRepository struct{ mock.Mock }

func (m *MockTransportRepository) AddTransporter(ctx context.Context, t *transport.Transporter) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTransportRepository) GetTransporter(ctx context.Context, id kernel.UUID) (*transport.Transporter, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*transport.Transporter)
	return t, args.Error(1)
}

func (m *MockTransportRepository) AddAgent(ctx context.Context, a *transport.Agent) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockTransportRepository) GetAgent(ctx context.Context, id kernel.UUID) (*transport.Agent, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*transport.Agent)
	return a, args.Error(1)
}

func (m *MockTransportRepository) AddTransportRequest(ctx context.Context, r *transport.TransportRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockTransportRepository) UpdateTransportRequest(ctx context.Context, r *transport.TransportRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockTransportRepository) GetTransportRequest(ctx context.Context, id kernel.UUID) (*transport.TransportRequest, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*transport.TransportRequest)
	return r, args.Error(1)
}

func (m *MockTransportRepository) AddLoadConfirmation(ctx context.Context, lc *transport.LoadConfirmation) error {
	return m.Called(ctx, lc).Error(0)
}

func (m *MockTransportRepository) GetLoadConfirmation(ctx context.Context, id kernel.UUID) (*transport.LoadConfirmation, error) {
	args := m.Called(ctx, id)
	lc, _ := args.Get(0).(*transport.LoadConfirmation)
	return lc, args.Error(1)
}

func (m *MockTransportRepository) AddManifest(ctx context.Context, mf *transport.Manifest) error {
	return m.Called(ctx, mf).Error(0)
}

func (m *MockTransportRepository) GetManifest(ctx context.Context, id kernel.UUID) (*transport.Manifest, error) {
	args := m.Called(ctx, id)
	mf, _ := args.Get(0).(*transport.Manifest)
	return mf, args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	return m.Called().Get(0).(ports.InvoiceRepository)
}

func (m *MockUoW) DocumentRepository() ports.DocumentRepository {
	return m.Called().Get(0).(ports.DocumentRepository)
}

func (m *MockUoW) TransportRepository() ports.TransportRepository {
	return m.Called().Get(0).(ports.TransportRepository)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return m.Called().Get(0).(commands.InvoiceUoW)
}

type MockDocumentUoWFactory struct{ mock.Mock }

func (m *MockDocumentUoWFactory) Create() commands.DocumentUoW {
	return m.Called().Get(0).(commands.DocumentUoW)
}

type MockIngestionUoWFactory struct{ mock.Mock }

func (m *MockIngestionUoWFactory) Create() commands.IngestionUoW {
	return m.Called().Get(0).(commands.IngestionUoW)
}

type MockTransportUoWFactory struct{ mock.Mock }

func (m *MockTransportUoWFactory) Create() commands.TransportUoW {
	return m.Called().Get(0).(commands.TransportUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockFileStore struct{ mock.Mock }

func (m *MockFileStore) Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error {
	return m.Called(ctx, key, contentType, body, size).Error(0)
}

func (m *MockFileStore) PresignGet(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type MockExtractionClient struct{ mock.Mock }

func (m *MockExtractionClient) RequestExtraction(ctx context.Context, req ports.ExtractionRequest) error {
	return m.Called(ctx, req).Error(0)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, msg ports.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) RenderTransportRequest(ctx context.Context, sheet ports.TransportRequestSheet) ([]byte, error) {
	args := m.Called(ctx, sheet)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *MockRenderer) RenderManifest(ctx context.Context, sheet ports.ManifestSheet) ([]byte, error) {
	args := m.Called(ctx, sheet)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}
