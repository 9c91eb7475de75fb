package commands

import (
	"errors"
	"net/mail"
	"strings"

	"doctrack/internal/pkg/errs"
	"doctrack/internal/pkg/guard"
)

var ErrSendStageRemindersCommandIsNotConstructed = errors.New(
	"SendStageRemindersCommand must be created via NewSendStageRemindersCommand constructor",
)

// SendStageRemindersCommand mails the digest of blocked invoices.
type SendStageRemindersCommand struct {
	recipients []string

	guard guard.ConstructorGuard
}

func NewSendStageRemindersCommand(recipients []string) (SendStageRemindersCommand, error) {
	cleaned := make([]string, 0, len(recipients))
	for _, r := range recipients {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, err := mail.ParseAddress(r); err != nil {
			return SendStageRemindersCommand{}, errs.NewValueIsInvalidErrorWithCause("recipient", err)
		}
		cleaned = append(cleaned, r)
	}
	if len(cleaned) == 0 {
		return SendStageRemindersCommand{}, errs.NewValueIsRequiredError("recipients")
	}

	return SendStageRemindersCommand{
		recipients: cleaned,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SendStageRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendStageRemindersCommandIsNotConstructed)
}

func (c SendStageRemindersCommand) Recipients() []string { return c.recipients }
