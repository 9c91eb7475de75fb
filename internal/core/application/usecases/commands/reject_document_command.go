package commands

import (
	"errors"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/guard"
)

var ErrRejectDocumentCommandIsNotConstructed = errors.New(
	"RejectDocumentCommand must be created via NewRejectDocumentCommand constructor",
)

// RejectDocumentCommand discards a staged extraction. Reviewer and note are
// checked by the document itself.
type RejectDocumentCommand struct {
	documentID kernel.UUID
	reviewer   string
	note       string

	guard guard.ConstructorGuard
}

func NewRejectDocumentCommand(documentID kernel.UUID, reviewer string, note string) (RejectDocumentCommand, error) {
	if err := documentID.Validate(); err != nil {
		return RejectDocumentCommand{}, err
	}
	return RejectDocumentCommand{
		documentID: documentID,
		reviewer:   reviewer,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RejectDocumentCommand) Validate() error {
	return c.guard.Validate(ErrRejectDocumentCommandIsNotConstructed)
}

func (c RejectDocumentCommand) DocumentID() kernel.UUID { return c.documentID }
func (c RejectDocumentCommand) Reviewer() string        { return c.reviewer }
func (c RejectDocumentCommand) Note() string            { return c.note }
