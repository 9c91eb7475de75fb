package documentrepo_test

import (
	"context"
	"testing"
	"time"

	"doctrack/internal/adapters/out/postgres/documentrepo"
	"doctrack/internal/adapters/out/postgres/invoicerepo"
	"doctrack/internal/adapters/out/postgres/pgtest"
	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type DocumentRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *documentrepo.GormDocumentRepository
	invoices   *invoicerepo.GormInvoiceRepository
	tracker    *MockAggregateTracker
}

func (suite *DocumentRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *DocumentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.tracker = &MockAggregateTracker{}
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = documentrepo.NewGormDocumentRepository(suite.database.DB, suite.tracker)
	suite.invoices = invoicerepo.NewGormInvoiceRepository(suite.database.DB, suite.tracker)
}

func (suite *DocumentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestAdd_AndGetByReference() {
	ctx := context.Background()
	doc := suite.newDocument("ref-1", now)

	suite.Require().NoError(suite.repository.Add(ctx, doc))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", doc.ID(), doc)

	stored, err := suite.repository.GetByReference(ctx, " ref-1 ")
	suite.Require().NoError(err)
	suite.True(doc.ID().IsEqual(stored.ID()))
	suite.Equal(document.AwaitingExtraction, stored.Status())
	suite.Equal(document.UnknownType, stored.Type())
	suite.Equal("invoice.pdf", stored.Filename())
	suite.Nil(stored.InvoiceID())
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestAdd_DuplicateReference() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDocument("ref-1", now)))

	err := suite.repository.Add(ctx, suite.newDocument("ref-1", now))
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestGetByReference_Errors() {
	_, err := suite.repository.GetByReference(context.Background(), "  ")
	suite.ErrorIs(err, errs.ErrValueIsRequired)

	_, err = suite.repository.GetByReference(context.Background(), "unknown")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestUpdate_StagedExtractionAndAcknowledge() {
	ctx := context.Background()
	doc := suite.newDocument("ref-1", now)
	suite.Require().NoError(suite.repository.Add(ctx, doc))

	extraction := document.NewExtraction(
		map[string]string{document.FieldInvoiceNumber: "INV-1001", document.FieldCurrency: "USD"},
		[]document.LineItem{{Description: "Copper cathode", Quantity: decimal.NewFromInt(2), GrossWeight: decimal.RequireFromString("125.5")}},
	)
	suite.Require().NoError(doc.Stage(document.CommercialInvoice, extraction, now))
	suite.Require().NoError(suite.repository.Update(ctx, doc))

	staged, err := suite.repository.Get(ctx, doc.ID())
	suite.Require().NoError(err)
	suite.Equal(document.PendingReview, staged.Status())
	suite.Equal(document.CommercialInvoice, staged.Type())
	suite.Equal("INV-1001", staged.Extraction().Fields[document.FieldInvoiceNumber])
	suite.Require().Len(staged.Extraction().LineItems, 1)
	suite.True(decimal.RequireFromString("125.5").Equal(staged.Extraction().TotalGrossWeight()))

	inv, err := invoice.NewInvoice(kernel.NewUUID(), "INV-1001", now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.invoices.Add(ctx, inv))

	suite.Require().NoError(staged.Acknowledge("kam@example.com", inv.ID(), map[string]string{document.FieldCurrency: "EUR"}, now))
	suite.Require().NoError(suite.repository.Update(ctx, staged))

	acked, err := suite.repository.Get(ctx, doc.ID())
	suite.Require().NoError(err)
	suite.Equal(document.Acknowledged, acked.Status())
	suite.Equal("kam@example.com", acked.Reviewer())
	suite.Require().NotNil(acked.InvoiceID())
	suite.True(inv.ID().IsEqual(*acked.InvoiceID()))
	suite.Equal("EUR", acked.Fields()[document.FieldCurrency])
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	err := suite.repository.Update(context.Background(), suite.newDocument("ref-404", now))
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestListAwaitingExtractionBefore() {
	ctx := context.Background()
	oldest := suite.newDocument("ref-old", now.Add(-2*time.Hour))
	older := suite.newDocument("ref-older", now.Add(-time.Hour))
	fresh := suite.newDocument("ref-fresh", now)
	staged := suite.newDocument("ref-staged", now.Add(-3*time.Hour))
	suite.Require().NoError(staged.Stage(document.PackingList, document.NewExtraction(nil, nil), now))

	for _, doc := range []*document.Document{older, fresh, oldest, staged} {
		suite.Require().NoError(suite.repository.Add(ctx, doc))
	}

	stale, err := suite.repository.ListAwaitingExtractionBefore(ctx, now.Add(-30*time.Minute))
	suite.Require().NoError(err)
	suite.Require().Len(stale, 2)
	suite.Equal("ref-old", stale[0].Reference())
	suite.Equal("ref-older", stale[1].Reference())
}

func (suite *DocumentRepositoryIntegrationTestSuite) newDocument(reference string, at time.Time) *document.Document {
	id := kernel.NewUUID()
	doc, err := document.NewDocument(id, document.UnknownType, "uploads/"+id.String()+"/invoice.pdf", "invoice.pdf", "application/pdf", reference, at)
	suite.Require().NoError(err)
	return doc
}

func TestDocumentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentRepositoryIntegrationTestSuite))
}
