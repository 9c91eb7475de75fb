package commands

import (
	"context"
	"time"
)

type RejectDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
}

func NewRejectDocumentCommandHandler(uowFactory DocumentUoWFactory) RejectDocumentCommandHandler {
	return RejectDocumentCommandHandler{uowFactory: uowFactory}
}

func (h RejectDocumentCommandHandler) Handle(ctx context.Context, cmd RejectDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DocumentRepository()

	doc, err := repo.Get(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	if err = doc.Reject(cmd.Reviewer(), cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, doc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
