package http

import (
	"context"
	"crypto/subtle"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/application/usecases/queries"
	"doctrack/internal/generated/servers"

	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

type (
	commandHandler[C any] interface {
		Handle(ctx context.Context, cmd C) error
	}

	resultHandler[C any, R any] interface {
		Handle(ctx context.Context, cmd C) (R, error)
	}
)

// Handlers groups the use cases the API exposes.
type Handlers struct {
	// Commands
	CreateInvoice          commandHandler[commands.CreateInvoiceCommand]
	SetRequirements        commandHandler[commands.SetRequirementsCommand]
	PerformInvoiceAction   commandHandler[commands.PerformInvoiceActionCommand]
	RecordInspection       commandHandler[commands.RecordInspectionCommand]
	RecordFeri             commandHandler[commands.RecordFeriCommand]
	UploadDocument         commandHandler[commands.UploadDocumentCommand]
	ReceiveExtraction      resultHandler[commands.ReceiveExtractionCommand, commands.ReceiveExtractionResult]
	AcknowledgeDocument    resultHandler[commands.AcknowledgeDocumentCommand, commands.AcknowledgeDocumentResult]
	RejectDocument         commandHandler[commands.RejectDocumentCommand]
	CreateTransporter      commandHandler[commands.CreateTransporterCommand]
	CreateAgent            commandHandler[commands.CreateAgentCommand]
	CreateTransportRequest resultHandler[commands.CreateTransportRequestCommand, string]
	IssueLoadConfirmation  commandHandler[commands.IssueLoadConfirmationCommand]
	GenerateManifest       resultHandler[commands.GenerateManifestCommand, string]

	// Queries
	GetInvoice                 resultHandler[queries.GetInvoiceQuery, *queries.GetInvoiceQueryResponse]
	ListInvoices               resultHandler[queries.ListInvoicesQuery, []queries.ListInvoicesQueryResponse]
	GetDocument                resultHandler[queries.GetDocumentQuery, *queries.GetDocumentQueryResponse]
	ListPendingReviewDocuments resultHandler[queries.ListPendingReviewDocumentsQuery, []queries.ListPendingReviewDocumentsQueryResponse]
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers       Handlers
	callbackSecret string
	logger         *zap.Logger
}

// NewServer wires the use cases. callbackSecret is compared with the
// X-Extraction-Secret header of extraction callbacks.
func NewServer(handlers Handlers, callbackSecret string, logger *zap.Logger) *Server {
	return &Server{
		handlers:       handlers,
		callbackSecret: callbackSecret,
		logger:         logger.Named("http"),
	}
}

func (s *Server) secretMatches(got string) bool {
	if s.callbackSecret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(s.callbackSecret)) == 1
}
