package commands

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/ports"
)

// UploadDocumentCommandHandler runs the first phase of ingestion: the file
// is stored, the document is registered as awaiting extraction and the
// extraction engine is asked to read it. When the engine cannot be reached
// the document is marked ExtractionFailed and the error is returned.
//
// Example:
//
//	handler := NewUploadDocumentCommandHandler(uowFactory, fileStore, extraction, callbackURL)
//	cmd, err := NewUploadDocumentCommand(kernel.NewUUID(), document.CommercialInvoice, "inv-0042.pdf", "application/pdf", content)
//	if err != nil {
//		return err
//	}
//	if err = handler.Handle(ctx, cmd); err != nil {
//		// stored, but extraction was not started
//	}
type UploadDocumentCommandHandler struct {
	uowFactory  DocumentUoWFactory
	fileStore   ports.FileStore
	extraction  ports.ExtractionClient
	callbackURL string
}

func NewUploadDocumentCommandHandler(
	uowFactory DocumentUoWFactory,
	fileStore ports.FileStore,
	extraction ports.ExtractionClient,
	callbackURL string,
) UploadDocumentCommandHandler {
	return UploadDocumentCommandHandler{
		uowFactory:  uowFactory,
		fileStore:   fileStore,
		extraction:  extraction,
		callbackURL: callbackURL,
	}
}

func (h UploadDocumentCommandHandler) Handle(ctx context.Context, cmd UploadDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	key := cmd.FileKey()
	if err := h.fileStore.Put(ctx, key, cmd.ContentType(), bytes.NewReader(cmd.Content()), int64(len(cmd.Content()))); err != nil {
		return fmt.Errorf("store document: %w", err)
	}

	doc, err := document.NewDocument(
		cmd.DocumentID(),
		cmd.Type(),
		key,
		cmd.Filename(),
		cmd.ContentType(),
		kernel.NewUUID().String(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = h.register(ctx, doc); err != nil {
		return err
	}

	if err = h.requestExtraction(ctx, doc); err != nil {
		if failErr := h.markFailed(ctx, doc.ID(), err.Error()); failErr != nil {
			return fmt.Errorf("%w (marking document failed: %v)", err, failErr)
		}
		return err
	}

	return nil
}

func (h UploadDocumentCommandHandler) register(ctx context.Context, doc *document.Document) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DocumentRepository().Add(ctx, doc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h UploadDocumentCommandHandler) requestExtraction(ctx context.Context, doc *document.Document) error {
	url, err := h.fileStore.PresignGet(ctx, doc.FileKey())
	if err != nil {
		return fmt.Errorf("presign document: %w", err)
	}

	docType := ""
	if doc.Type() != document.UnknownType {
		docType = doc.Type().String()
	}

	err = h.extraction.RequestExtraction(ctx, ports.ExtractionRequest{
		DocumentID:   doc.ID().String(),
		Reference:    doc.Reference(),
		DocumentType: docType,
		Filename:     doc.Filename(),
		FileURL:      url,
		CallbackURL:  h.callbackURL,
	})
	if err != nil {
		return fmt.Errorf("request extraction: %w", err)
	}
	return nil
}

func (h UploadDocumentCommandHandler) markFailed(ctx context.Context, id kernel.UUID, reason string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DocumentRepository()

	doc, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = doc.Fail(reason, time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, doc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
