package commands

import (
	"errors"
	"strings"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/model/transport"
	"doctrack/internal/pkg/guard"
)

var ErrIssueLoadConfirmationCommandIsNotConstructed = errors.New(
	"IssueLoadConfirmationCommand must be created via NewIssueLoadConfirmationCommand constructor",
)

// IssueLoadConfirmationCommand records the transporter's confirmation of a
// transport request. The details are validated by the domain when issued.
type IssueLoadConfirmationCommand struct {
	confirmationID kernel.UUID
	requestID      kernel.UUID
	details        transport.LoadConfirmationSnapshot
	actor          string

	guard guard.ConstructorGuard
}

func NewIssueLoadConfirmationCommand(
	confirmationID kernel.UUID,
	requestID kernel.UUID,
	details transport.LoadConfirmationSnapshot,
	actor string,
) (IssueLoadConfirmationCommand, error) {
	if err := errors.Join(confirmationID.Validate(), requestID.Validate()); err != nil {
		return IssueLoadConfirmationCommand{}, err
	}
	return IssueLoadConfirmationCommand{
		confirmationID: confirmationID,
		requestID:      requestID,
		details:        details,
		actor:          strings.TrimSpace(actor),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c IssueLoadConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrIssueLoadConfirmationCommandIsNotConstructed)
}

func (c IssueLoadConfirmationCommand) ConfirmationID() kernel.UUID                 { return c.confirmationID }
func (c IssueLoadConfirmationCommand) RequestID() kernel.UUID                      { return c.requestID }
func (c IssueLoadConfirmationCommand) Details() transport.LoadConfirmationSnapshot { return c.details }
func (c IssueLoadConfirmationCommand) Actor() string                               { return c.actor }
