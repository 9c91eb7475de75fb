package http

import (
	"net/http"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/model/transport"
	"doctrack/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/labstack/echo/v4"
)

// CreateTransporter handles POST /api/v1/transporters.
func (s *Server) CreateTransporter(ctx echo.Context) error {
	var body servers.NewTransporter
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateTransporterCommand(id, body.Name, deref(body.Email), deref(body.Phone))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.CreateTransporter.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: id.Bytes()})
}

// CreateAgent handles POST /api/v1/agents.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var body servers.NewAgent
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateAgentCommand(id, body.Name, deref(body.Email), deref(body.BorderPost))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.CreateAgent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: id.Bytes()})
}

// CreateTransportRequest handles POST /api/v1/transport-requests.
func (s *Server) CreateTransportRequest(ctx echo.Context) error {
	var body servers.NewTransportRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	transporterID, err := toKernelUUID(body.TransporterId)
	if err != nil {
		return s.fail(ctx, err)
	}
	invoiceIDs, err := toKernelUUIDs(body.InvoiceIds)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateTransportRequestCommand(id, transporterID, invoiceIDs, body.PickupDate.Time, body.Destination)
	if err != nil {
		return s.fail(ctx, err)
	}

	number, err := s.handlers.CreateTransportRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.NumberedResource{Id: id.Bytes(), Number: number})
}

// IssueLoadConfirmation handles POST /api/v1/transport-requests/{requestId}/load-confirmation.
func (s *Server) IssueLoadConfirmation(ctx echo.Context, requestId openapi_types.UUID) error {
	var body servers.NewLoadConfirmation
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	requestID, err := toKernelUUID(requestId)
	if err != nil {
		return s.fail(ctx, err)
	}
	rate, err := fromMoney(body.Rate)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewIssueLoadConfirmationCommand(id, requestID, transport.LoadConfirmationSnapshot{
		TruckRegistration:   body.TruckRegistration,
		TrailerRegistration: deref(body.TrailerRegistration),
		DriverName:          body.DriverName,
		Rate:                rate,
		LoadingDate:         body.LoadingDate.Time,
	}, deref(body.Actor))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.IssueLoadConfirmation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: id.Bytes()})
}

// GenerateManifest handles POST /api/v1/manifests. Without invoice_ids every
// invoice on the confirmed load is listed.
func (s *Server) GenerateManifest(ctx echo.Context) error {
	var body servers.NewManifest
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	confirmationID, err := toKernelUUID(body.LoadConfirmationId)
	if err != nil {
		return s.fail(ctx, err)
	}
	agentID, err := toKernelUUID(body.AgentId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var invoiceIDs []kernel.UUID
	if body.InvoiceIds != nil {
		if invoiceIDs, err = toKernelUUIDs(*body.InvoiceIds); err != nil {
			return s.fail(ctx, err)
		}
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewGenerateManifestCommand(id, confirmationID, agentID, invoiceIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	number, err := s.handlers.GenerateManifest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.NumberedResource{Id: id.Bytes(), Number: number})
}
