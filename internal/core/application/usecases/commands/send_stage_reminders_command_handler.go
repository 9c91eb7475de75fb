package commands

import (
	"context"
	"fmt"
	"strings"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/ports"
)

// SendStageRemindersCommandHandler mails one digest listing every blocked
// invoice grouped by the department that owns it. Nothing is sent when no
// invoice is blocked. Returns the number of invoices listed.
type SendStageRemindersCommandHandler struct {
	uowFactory InvoiceUoWFactory
	mailer     ports.Mailer
}

func NewSendStageRemindersCommandHandler(uowFactory InvoiceUoWFactory, mailer ports.Mailer) SendStageRemindersCommandHandler {
	return SendStageRemindersCommandHandler{uowFactory: uowFactory, mailer: mailer}
}

func (h SendStageRemindersCommandHandler) Handle(ctx context.Context, cmd SendStageRemindersCommand) (int, error) {
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

	blocked, err := uow.InvoiceRepository().ListBlocked(ctx)
	if err != nil {
		return 0, err
	}
	if len(blocked) == 0 {
		return 0, nil
	}

	err = h.mailer.Send(ctx, ports.Message{
		To:      cmd.Recipients(),
		Subject: fmt.Sprintf("%d blocked invoices", len(blocked)),
		Body:    reminderDigest(blocked),
	})
	if err != nil {
		return 0, fmt.Errorf("mail reminder digest: %w", err)
	}

	return len(blocked), nil
}

func reminderDigest(blocked []*invoice.Invoice) string {
	byOwner := make(map[invoice.Owner][]*invoice.Invoice)
	for _, inv := range blocked {
		byOwner[inv.Owner()] = append(byOwner[inv.Owner()], inv)
	}

	var b strings.Builder
	b.WriteString("The following invoices are blocked:\n")
	for owner := invoice.KeyAccountsManager; owner <= invoice.FinanceDepartment; owner++ {
		list := byOwner[owner]
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", owner)
		for _, inv := range list {
			reasons := make([]string, 0, len(inv.BlockReasons()))
			for _, c := range inv.BlockReasons() {
				reasons = append(reasons, c.Description())
			}
			fmt.Fprintf(&b, "  %s (%s): %s\n", inv.Number(), inv.Stage(), strings.Join(reasons, "; "))
		}
	}
	return b.String()
}
