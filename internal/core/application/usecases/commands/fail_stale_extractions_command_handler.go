package commands

import (
	"context"
	"fmt"
	"time"
)

// FailStaleExtractionsCommandHandler marks every document that waited for
// extraction longer than the timeout as ExtractionFailed and returns how
// many were marked.
type FailStaleExtractionsCommandHandler struct {
	uowFactory DocumentUoWFactory
}

func NewFailStaleExtractionsCommandHandler(uowFactory DocumentUoWFactory) FailStaleExtractionsCommandHandler {
	return FailStaleExtractionsCommandHandler{uowFactory: uowFactory}
}

func (h FailStaleExtractionsCommandHandler) Handle(ctx context.Context, cmd FailStaleExtractionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DocumentRepository()

	now := time.Now().UTC()
	stale, err := repo.ListAwaitingExtractionBefore(ctx, now.Add(-cmd.Timeout()))
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	reason := fmt.Sprintf("no extraction result within %s", cmd.Timeout())
	for _, doc := range stale {
		if err = doc.Fail(reason, now); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, doc); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
