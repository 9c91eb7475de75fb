package http

import (
	"io"
	"net/http"
	"strings"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/application/usecases/queries"
	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/generated/servers"
	"doctrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// UploadDocument handles POST /api/v1/documents (multipart: file, type).
// The document is stored and sent for extraction; the response carries its id.
func (s *Server) UploadDocument(ctx echo.Context) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return s.fail(ctx, errs.NewValueIsRequiredErrorWithCause("file", err))
	}

	docType := document.UnknownType
	if raw := strings.TrimSpace(ctx.FormValue("type")); raw != "" {
		if docType, err = document.ParseType(raw); err != nil {
			return s.fail(ctx, err)
		}
	}

	file, err := header.Open()
	if err != nil {
		return s.fail(ctx, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewUploadDocumentCommand(id, docType, header.Filename, header.Header.Get(echo.HeaderContentType), content)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.UploadDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, servers.CreatedResource{Id: id.Bytes()})
}

// ListPendingDocuments handles GET /api/v1/documents/pending.
func (s *Server) ListPendingDocuments(ctx echo.Context) error {
	rows, err := s.handlers.ListPendingReviewDocuments.Handle(ctx.Request().Context(), queries.NewListPendingReviewDocumentsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.DocumentSummary, len(rows))
	for i, row := range rows {
		fields := row.Fields
		if fields == nil {
			fields = map[string]string{}
		}
		response[i] = servers.DocumentSummary{
			Id:        row.ID.Bytes(),
			Type:      row.Type.String(),
			Filename:  row.Filename,
			Reference: row.Reference,
			Fields:    fields,
			CreatedAt: row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDocument handles GET /api/v1/documents/{documentId}.
func (s *Server) GetDocument(ctx echo.Context, documentId servers.DocumentId) error {
	id, err := toKernelUUID(documentId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetDocumentQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	doc, err := s.handlers.GetDocument.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	fields := doc.Fields
	if fields == nil {
		fields = map[string]string{}
	}
	items := make([]servers.LineItem, len(doc.LineItems))
	for i, item := range doc.LineItems {
		items[i] = servers.LineItem{
			Description: item.Description,
			Quantity:    optionalString(item.Quantity.String()),
			GrossWeight: optionalString(item.GrossWeight.String()),
		}
	}

	return ctx.JSON(http.StatusOK, servers.DocumentDetails{
		Id:            doc.ID.Bytes(),
		Type:          doc.Type.String(),
		Filename:      doc.Filename,
		ContentType:   doc.ContentType,
		Reference:     doc.Reference,
		Status:        doc.Status.String(),
		Fields:        fields,
		LineItems:     items,
		FailureReason: optionalString(doc.FailureReason),
		Reviewer:      optionalString(doc.Reviewer),
		ReviewNote:    optionalString(doc.ReviewNote),
		InvoiceId:     optionalUUID(doc.InvoiceID),
		DownloadUrl:   optionalString(doc.DownloadURL),
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	})
}

// AcknowledgeDocument handles POST /api/v1/documents/{documentId}/acknowledge.
func (s *Server) AcknowledgeDocument(ctx echo.Context, documentId servers.DocumentId) error {
	var body servers.AcknowledgeRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelUUID(documentId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var corrections map[string]string
	if body.Corrections != nil {
		corrections = *body.Corrections
	}
	cmd, err := commands.NewAcknowledgeDocumentCommand(id, body.Reviewer, corrections)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.AcknowledgeDocument.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AcknowledgeResponse{
		InvoiceId:      result.InvoiceID.Bytes(),
		InvoiceCreated: result.InvoiceCreated,
	})
}

// RejectDocument handles POST /api/v1/documents/{documentId}/reject.
func (s *Server) RejectDocument(ctx echo.Context, documentId servers.DocumentId) error {
	var body servers.RejectRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelUUID(documentId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRejectDocumentCommand(id, body.Reviewer, body.Note)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.RejectDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveExtractionCallback handles POST /api/v1/extractions/callback.
// Repeated callbacks for the same reference are answered with duplicate=true.
func (s *Server) ReceiveExtractionCallback(ctx echo.Context, params servers.ReceiveExtractionCallbackParams) error {
	if !s.secretMatches(params.XExtractionSecret) {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "invalid extraction secret",
		})
	}

	var body servers.ExtractionCallback
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	var fields map[string]string
	if body.Fields != nil {
		fields = *body.Fields
	}
	var items []document.LineItem
	if body.LineItems != nil {
		var err error
		if items, err = lineItems(*body.LineItems); err != nil {
			return s.fail(ctx, err)
		}
	}

	cmd, err := commands.NewReceiveExtractionCommand(body.Reference, deref(body.DocumentType), fields, items, deref(body.Error))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.ReceiveExtraction.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ExtractionCallbackResponse{
		DocumentId: result.DocumentID.Bytes(),
		Status:     result.Status.String(),
		Duplicate:  result.Duplicate,
	})
}

func lineItems(in []servers.LineItem) ([]document.LineItem, error) {
	out := make([]document.LineItem, 0, len(in))
	for _, item := range in {
		quantity, err := optionalDecimal("quantity", item.Quantity)
		if err != nil {
			return nil, err
		}
		var weight decimal.Decimal
		if item.GrossWeight != nil && strings.TrimSpace(*item.GrossWeight) != "" {
			w, err := kernel.ParseWeight(*item.GrossWeight)
			if err != nil {
				return nil, err
			}
			weight = w.Kilograms()
		}
		out = append(out, document.LineItem{
			Description: item.Description,
			Quantity:    quantity,
			GrossWeight: weight,
		})
	}
	return out, nil
}

func optionalDecimal(name string, s *string) (decimal.Decimal, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return decimal.Zero, nil
	}
	d, err := kernel.ParseDecimal(*s)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return d, nil
}
