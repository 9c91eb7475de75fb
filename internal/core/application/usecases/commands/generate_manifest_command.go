package commands

import (
	"errors"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/guard"
)

var ErrGenerateManifestCommandIsNotConstructed = errors.New(
	"GenerateManifestCommand must be created via NewGenerateManifestCommand constructor",
)

// GenerateManifestCommand builds the manifest of a confirmed load. Without
// invoice ids the manifest covers every invoice of the load.
type GenerateManifestCommand struct {
	manifestID         kernel.UUID
	loadConfirmationID kernel.UUID
	agentID            kernel.UUID
	invoiceIDs         []kernel.UUID

	guard guard.ConstructorGuard
}

func NewGenerateManifestCommand(
	manifestID kernel.UUID,
	loadConfirmationID kernel.UUID,
	agentID kernel.UUID,
	invoiceIDs []kernel.UUID,
) (GenerateManifestCommand, error) {
	if err := errors.Join(manifestID.Validate(), loadConfirmationID.Validate(), agentID.Validate()); err != nil {
		return GenerateManifestCommand{}, err
	}
	return GenerateManifestCommand{
		manifestID:         manifestID,
		loadConfirmationID: loadConfirmationID,
		agentID:            agentID,
		invoiceIDs:         invoiceIDs,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (c GenerateManifestCommand) Validate() error {
	return c.guard.Validate(ErrGenerateManifestCommandIsNotConstructed)
}

func (c GenerateManifestCommand) ManifestID() kernel.UUID         { return c.manifestID }
func (c GenerateManifestCommand) LoadConfirmationID() kernel.UUID { return c.loadConfirmationID }
func (c GenerateManifestCommand) AgentID() kernel.UUID            { return c.agentID }
func (c GenerateManifestCommand) InvoiceIDs() []kernel.UUID       { return c.invoiceIDs }
