package cmd

import (
	"context"
	"fmt"

	httpin "doctrack/internal/adapters/in/http"
	"doctrack/internal/adapters/out/extraction"
	"doctrack/internal/adapters/out/mailer"
	"doctrack/internal/adapters/out/pdf"
	"doctrack/internal/adapters/out/postgres"
	"doctrack/internal/adapters/out/s3store"
	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/application/usecases/queries"
	"doctrack/internal/core/ports"
	"doctrack/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Adapters are the outbound collaborators the use cases depend on.
type Adapters struct {
	FileStore  ports.FileStore
	Mailer     ports.Mailer
	Renderer   ports.PaperworkRenderer
	Extraction ports.ExtractionClient
}

type CompositionRoot struct {
	cfg        Config
	logger     *zap.Logger
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	adapters   Adapters
}

func NewCompositionRoot(cfg Config, logger *zap.Logger, gormDB *gorm.DB, adapters Adapters) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		adapters:   adapters,
	}
}

// NewAdapters connects the object store, SMTP relay, PDF renderer and
// extraction webhook described by cfg. The returned cleanup releases the
// browser held by the renderer.
func NewAdapters(ctx context.Context, cfg Config, logger *zap.Logger) (Adapters, func(), error) {
	store, err := s3store.New(ctx, s3store.Config{
		Endpoint:          cfg.StorageEndpoint,
		Region:            cfg.StorageRegion,
		Bucket:            cfg.StorageBucket,
		AccessKey:         cfg.StorageAccessKey,
		SecretKey:         cfg.StorageSecretKey,
		UsePathStyle:      cfg.StorageUsePathStyle,
		PresignExpiration: cfg.StoragePresignExpiration,
	}, logger.Named("s3"))
	if err != nil {
		return Adapters{}, nil, fmt.Errorf("file store: %w", err)
	}
	if err = store.EnsureBucket(ctx); err != nil {
		return Adapters{}, nil, fmt.Errorf("file store: %w", err)
	}

	smtp, err := mailer.New(mailer.Config{
		Host:     cfg.MailHost,
		Port:     cfg.MailPort,
		Username: cfg.MailUser,
		Password: cfg.MailPassword,
		From:     cfg.MailFrom,
	}, logger.Named("mailer"))
	if err != nil {
		return Adapters{}, nil, fmt.Errorf("mailer: %w", err)
	}

	webhook, err := extraction.NewWebhookClient(extraction.Config{
		WebhookURL: cfg.ExtractionWebhookURL,
		Secret:     cfg.ExtractionSecret,
		Timeout:    cfg.ExtractionRequestTimeout,
	}, logger.Named("extraction"))
	if err != nil {
		return Adapters{}, nil, fmt.Errorf("extraction client: %w", err)
	}

	renderer := pdf.NewRenderer(pdf.Config{
		RemoteURL: cfg.PDFRemoteURL,
		Timeout:   cfg.PDFTimeout,
		NoSandbox: cfg.PDFNoSandbox,
	}, logger.Named("pdf"))

	return Adapters{
		FileStore:  store,
		Mailer:     smtp,
		Renderer:   renderer,
		Extraction: webhook,
	}, renderer.Close, nil
}

// Commands

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateSetRequirementsCommandHandler() commands.SetRequirementsCommandHandler {
	return commands.NewSetRequirementsCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreatePerformInvoiceActionCommandHandler() commands.PerformInvoiceActionCommandHandler {
	return commands.NewPerformInvoiceActionCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateRecordInspectionCommandHandler() commands.RecordInspectionCommandHandler {
	return commands.NewRecordInspectionCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateRecordFeriCommandHandler() commands.RecordFeriCommandHandler {
	return commands.NewRecordFeriCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateSendStageRemindersCommandHandler() commands.SendStageRemindersCommandHandler {
	return commands.NewSendStageRemindersCommandHandler(c.invoiceUoWFactory(), c.adapters.Mailer)
}

func (c *CompositionRoot) CreateUploadDocumentCommandHandler() commands.UploadDocumentCommandHandler {
	return commands.NewUploadDocumentCommandHandler(
		c.documentUoWFactory(),
		c.adapters.FileStore,
		c.adapters.Extraction,
		c.cfg.CallbackURL(),
	)
}

func (c *CompositionRoot) CreateReceiveExtractionCommandHandler() commands.ReceiveExtractionCommandHandler {
	return commands.NewReceiveExtractionCommandHandler(c.documentUoWFactory())
}

func (c *CompositionRoot) CreateRejectDocumentCommandHandler() commands.RejectDocumentCommandHandler {
	return commands.NewRejectDocumentCommandHandler(c.documentUoWFactory())
}

func (c *CompositionRoot) CreateFailStaleExtractionsCommandHandler() commands.FailStaleExtractionsCommandHandler {
	return commands.NewFailStaleExtractionsCommandHandler(c.documentUoWFactory())
}

func (c *CompositionRoot) CreateAcknowledgeDocumentCommandHandler() commands.AcknowledgeDocumentCommandHandler {
	var f commands.IngestionUoWFactory = FuncIngestionUoWFactory(func() commands.IngestionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcknowledgeDocumentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTransporterCommandHandler() commands.CreateTransporterCommandHandler {
	return commands.NewCreateTransporterCommandHandler(c.transportUoWFactory())
}

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	return commands.NewCreateAgentCommandHandler(c.transportUoWFactory())
}

func (c *CompositionRoot) CreateCreateTransportRequestCommandHandler() commands.CreateTransportRequestCommandHandler {
	return commands.NewCreateTransportRequestCommandHandler(
		c.uowFactoryAll(),
		c.adapters.Renderer,
		c.adapters.FileStore,
		c.adapters.Mailer,
	)
}

func (c *CompositionRoot) CreateIssueLoadConfirmationCommandHandler() commands.IssueLoadConfirmationCommandHandler {
	return commands.NewIssueLoadConfirmationCommandHandler(c.uowFactoryAll())
}

func (c *CompositionRoot) CreateGenerateManifestCommandHandler() commands.GenerateManifestCommandHandler {
	return commands.NewGenerateManifestCommandHandler(
		c.uowFactoryAll(),
		c.adapters.Renderer,
		c.adapters.FileStore,
		c.adapters.Mailer,
	)
}

// Queries

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListInvoicesQueryHandler() queries.ListInvoicesQueryHandler {
	return queries.NewListInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDocumentQueryHandler() queries.GetDocumentQueryHandler {
	return queries.NewGetDocumentQueryHandler(c.uowFactory, c.adapters.FileStore)
}

func (c *CompositionRoot) CreateListPendingReviewDocumentsQueryHandler() queries.ListPendingReviewDocumentsQueryHandler {
	return queries.NewListPendingReviewDocumentsQueryHandler(c.gormDB)
}

// Inbound

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateInvoice:          c.CreateCreateInvoiceCommandHandler(),
		SetRequirements:        c.CreateSetRequirementsCommandHandler(),
		PerformInvoiceAction:   c.CreatePerformInvoiceActionCommandHandler(),
		RecordInspection:       c.CreateRecordInspectionCommandHandler(),
		RecordFeri:             c.CreateRecordFeriCommandHandler(),
		UploadDocument:         c.CreateUploadDocumentCommandHandler(),
		ReceiveExtraction:      c.CreateReceiveExtractionCommandHandler(),
		AcknowledgeDocument:    c.CreateAcknowledgeDocumentCommandHandler(),
		RejectDocument:         c.CreateRejectDocumentCommandHandler(),
		CreateTransporter:      c.CreateCreateTransporterCommandHandler(),
		CreateAgent:            c.CreateCreateAgentCommandHandler(),
		CreateTransportRequest: c.CreateCreateTransportRequestCommandHandler(),
		IssueLoadConfirmation:  c.CreateIssueLoadConfirmationCommandHandler(),
		GenerateManifest:       c.CreateGenerateManifestCommandHandler(),

		GetInvoice:                 c.CreateGetInvoiceQueryHandler(),
		ListInvoices:               c.CreateListInvoicesQueryHandler(),
		GetDocument:                c.CreateGetDocumentQueryHandler(),
		ListPendingReviewDocuments: c.CreateListPendingReviewDocumentsQueryHandler(),
	}, c.cfg.ExtractionSecret, c.logger.Named("http"))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateFailStaleExtractionsCommandHandler(),
		c.CreateSendStageRemindersCommandHandler(),
		jobs.Config{
			StaleExtractionSchedule: c.cfg.JobsStaleExtractionCron,
			ExtractionTimeout:       c.cfg.JobsExtractionTimeout,
			ReminderSchedule:        c.cfg.JobsReminderCron,
			ReminderRecipients:      c.cfg.JobsReminderRecipients,
		},
		c.logger.Named("jobs"),
	)
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) documentUoWFactory() commands.DocumentUoWFactory {
	return FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) transportUoWFactory() commands.TransportUoWFactory {
	return FuncTransportUoWFactory(func() commands.TransportUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryAll() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}

type FuncIngestionUoWFactory func() commands.IngestionUoW

func (f FuncIngestionUoWFactory) Create() commands.IngestionUoW {
	return f()
}

type FuncTransportUoWFactory func() commands.TransportUoW

func (f FuncTransportUoWFactory) Create() commands.TransportUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
