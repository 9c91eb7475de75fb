package commands

import (
	"bytes"
	"context"
	"fmt"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/ports"
)

const pdfContentType = "application/pdf"

// paperwork renders, stores and mails the PDFs produced by transport
// commands.
type paperwork struct {
	renderer  ports.PaperworkRenderer
	fileStore ports.FileStore
	mailer    ports.Mailer
}

func (p paperwork) store(ctx context.Context, key string, pdf []byte) error {
	if err := p.fileStore.Put(ctx, key, pdfContentType, bytes.NewReader(pdf), int64(len(pdf))); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (p paperwork) send(ctx context.Context, to, subject, body, filename string, pdf []byte) error {
	err := p.mailer.Send(ctx, ports.Message{
		To:      []string{to},
		Subject: subject,
		Body:    body,
		Attachments: []ports.Attachment{
			{Filename: filename, ContentType: pdfContentType, Data: pdf},
		},
	})
	if err != nil {
		return fmt.Errorf("mail %s: %w", filename, err)
	}
	return nil
}

func shipmentLines(invoices []*invoice.Invoice) []ports.ShipmentLine {
	lines := make([]ports.ShipmentLine, 0, len(invoices))
	for _, inv := range invoices {
		value := ""
		if v := inv.Value(); v != nil {
			value = v.String()
		}
		lines = append(lines, ports.ShipmentLine{
			InvoiceNumber: inv.Number(),
			Customer:      inv.CustomerName(),
			Destination:   inv.Destination(),
			GrossWeight:   inv.GrossWeight().String(),
			Packages:      inv.PackageCount(),
			Value:         value,
			FeriReference: inv.FeriReference(),
		})
	}
	return lines
}
