package commands

import (
	"context"
	"time"

	"doctrack/internal/core/domain/model/transport"
)

// CreateTransporterCommandHandler persists new transporters. Duplicate
// names fail with errs.ErrObjectAlreadyExists from the repository.
type CreateTransporterCommandHandler struct {
	uowFactory TransportUoWFactory
}

func NewCreateTransporterCommandHandler(uowFactory TransportUoWFactory) CreateTransporterCommandHandler {
	return CreateTransporterCommandHandler{uowFactory: uowFactory}
}

func (h CreateTransporterCommandHandler) Handle(ctx context.Context, cmd CreateTransporterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	t, err := transport.NewTransporter(cmd.TransporterID(), cmd.Name(), cmd.Email(), cmd.Phone(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TransportRepository().AddTransporter(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// CreateAgentCommandHandler persists new clearing agents.
type CreateAgentCommandHandler struct {
	uowFactory TransportUoWFactory
}

func NewCreateAgentCommandHandler(uowFactory TransportUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{uowFactory: uowFactory}
}

func (h CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	a, err := transport.NewAgent(cmd.AgentID(), cmd.Name(), cmd.Email(), cmd.BorderPost(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TransportRepository().AddAgent(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
