package commands

import (
	"errors"
	"strings"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
	"doctrack/internal/pkg/guard"
)

var ErrAcknowledgeDocumentCommandIsNotConstructed = errors.New(
	"AcknowledgeDocumentCommand must be created via NewAcknowledgeDocumentCommand constructor",
)

// AcknowledgeDocumentCommand confirms the staged extraction of a document,
// optionally with field corrections, and populates the invoice from it.
type AcknowledgeDocumentCommand struct {
	documentID  kernel.UUID
	reviewer    string
	corrections map[string]string

	guard guard.ConstructorGuard
}

func NewAcknowledgeDocumentCommand(documentID kernel.UUID, reviewer string, corrections map[string]string) (AcknowledgeDocumentCommand, error) {
	reviewer = strings.TrimSpace(reviewer)

	var reviewerErr error
	if reviewer == "" {
		reviewerErr = errs.NewValueIsRequiredError("reviewer")
	}
	if err := errors.Join(documentID.Validate(), reviewerErr); err != nil {
		return AcknowledgeDocumentCommand{}, err
	}

	return AcknowledgeDocumentCommand{
		documentID:  documentID,
		reviewer:    reviewer,
		corrections: corrections,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AcknowledgeDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgeDocumentCommandIsNotConstructed)
}

func (c AcknowledgeDocumentCommand) DocumentID() kernel.UUID        { return c.documentID }
func (c AcknowledgeDocumentCommand) Reviewer() string               { return c.reviewer }
func (c AcknowledgeDocumentCommand) Corrections() map[string]string { return c.corrections }
