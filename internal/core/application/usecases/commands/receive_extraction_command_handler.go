package commands

import (
	"context"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
)

// ReceiveExtractionResult tells the caller what happened to the callback.
type ReceiveExtractionResult struct {
	DocumentID kernel.UUID
	Status     document.Status
	// Duplicate is set when the document had already left
	// AwaitingExtraction; the callback was ignored.
	Duplicate bool
}

// ReceiveExtractionCommandHandler stages extracted data for review. A
// callback for a document that already left AwaitingExtraction is reported
// as a duplicate and changes nothing.
type ReceiveExtractionCommandHandler struct {
	uowFactory DocumentUoWFactory
}

func NewReceiveExtractionCommandHandler(uowFactory DocumentUoWFactory) ReceiveExtractionCommandHandler {
	return ReceiveExtractionCommandHandler{uowFactory: uowFactory}
}

func (h ReceiveExtractionCommandHandler) Handle(ctx context.Context, cmd ReceiveExtractionCommand) (ReceiveExtractionResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReceiveExtractionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReceiveExtractionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DocumentRepository()

	doc, err := repo.GetByReference(ctx, cmd.Reference())
	if err != nil {
		return ReceiveExtractionResult{}, err
	}

	if doc.Status() != document.AwaitingExtraction {
		return ReceiveExtractionResult{DocumentID: doc.ID(), Status: doc.Status(), Duplicate: true}, nil
	}

	now := time.Now().UTC()
	if cmd.IsFailure() {
		err = doc.Fail(cmd.Failure(), now)
	} else {
		err = doc.Stage(cmd.Type(), cmd.Extraction(), now)
	}
	if err != nil {
		return ReceiveExtractionResult{}, err
	}

	if err = repo.Update(ctx, doc); err != nil {
		return ReceiveExtractionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReceiveExtractionResult{}, err
	}

	return ReceiveExtractionResult{DocumentID: doc.ID(), Status: doc.Status()}, nil
}
