package commands

import (
	"context"
	"fmt"
	"time"

	"doctrack/internal/core/domain/services"
	"doctrack/internal/core/ports"
)

// GenerateManifestCommandHandler builds the manifest, renders and stores
// its PDF and mails it to the clearing agent before committing. Returns the
// manifest number.
//
// Example:
//
//	handler := NewGenerateManifestCommandHandler(uowFactory, renderer, fileStore, mailer)
//	cmd, _ := NewGenerateManifestCommand(kernel.NewUUID(), loadConfirmationID, agentID, invoiceIDs)
//	number, err := handler.Handle(ctx, cmd)
type GenerateManifestCommandHandler struct {
	uowFactory UoWFactory
	builder    services.ManifestBuilder
	paperwork  paperwork
}

func NewGenerateManifestCommandHandler(
	uowFactory UoWFactory,
	renderer ports.PaperworkRenderer,
	fileStore ports.FileStore,
	mailer ports.Mailer,
) GenerateManifestCommandHandler {
	return GenerateManifestCommandHandler{
		uowFactory: uowFactory,
		builder:    services.NewManifestBuilder(),
		paperwork:  paperwork{renderer: renderer, fileStore: fileStore, mailer: mailer},
	}
}

func (h GenerateManifestCommandHandler) Handle(ctx context.Context, cmd GenerateManifestCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	transportRepo := uow.TransportRepository()

	lc, err := transportRepo.GetLoadConfirmation(ctx, cmd.LoadConfirmationID())
	if err != nil {
		return "", err
	}

	agent, err := transportRepo.GetAgent(ctx, cmd.AgentID())
	if err != nil {
		return "", err
	}

	ids := cmd.InvoiceIDs()
	if len(ids) == 0 {
		request, reqErr := transportRepo.GetTransportRequest(ctx, lc.TransportRequestID())
		if reqErr != nil {
			return "", reqErr
		}
		ids = request.InvoiceIDs()
	}

	invoices, err := invoiceRepo.GetMany(ctx, ids)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	manifest, err := h.builder.Build(cmd.ManifestID(), lc, agent, invoices, now)
	if err != nil {
		return "", err
	}

	totals := manifest.Totals()
	values := make([]string, 0, len(totals.Values))
	for _, v := range totals.Values {
		values = append(values, v.String())
	}

	pdf, err := h.paperwork.renderer.RenderManifest(ctx, ports.ManifestSheet{
		Number:              manifest.Number(),
		IssuedAt:            now,
		Agent:               agent.Name(),
		BorderPost:          agent.BorderPost(),
		TruckRegistration:   lc.TruckRegistration(),
		TrailerRegistration: lc.TrailerRegistration(),
		DriverName:          lc.DriverName(),
		Lines:               shipmentLines(invoices),
		TotalWeight:         totals.GrossWeight.String(),
		TotalPackages:       totals.PackageCount,
		TotalValues:         values,
	})
	if err != nil {
		return "", fmt.Errorf("render manifest: %w", err)
	}

	filename := manifest.Number() + ".pdf"
	key := "paperwork/manifests/" + filename
	if err = h.paperwork.store(ctx, key, pdf); err != nil {
		return "", err
	}
	if err = manifest.SetDocumentKey(key); err != nil {
		return "", err
	}

	if err = transportRepo.AddManifest(ctx, manifest); err != nil {
		return "", err
	}
	for _, inv := range invoices {
		if err = invoiceRepo.Update(ctx, inv); err != nil {
			return "", err
		}
	}

	body := fmt.Sprintf("Please find attached manifest %s for truck %s.", manifest.Number(), lc.TruckRegistration())
	if err = h.paperwork.send(ctx, agent.Email(), "Manifest "+manifest.Number(), body, filename, pdf); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return manifest.Number(), nil
}
