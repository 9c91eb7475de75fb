package commands

import (
	"errors"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/guard"
)

var (
	ErrCreateTransporterCommandIsNotConstructed = errors.New(
		"CreateTransporterCommand must be created via NewCreateTransporterCommand constructor",
	)
	ErrCreateAgentCommandIsNotConstructed = errors.New(
		"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
	)
)

// CreateTransporterCommand registers a haulage company. Name and address
// rules live in transport.NewTransporter.
type CreateTransporterCommand struct {
	transporterID kernel.UUID
	name          string
	email         string
	phone         string

	guard guard.ConstructorGuard
}

func NewCreateTransporterCommand(transporterID kernel.UUID, name, email, phone string) (CreateTransporterCommand, error) {
	if err := transporterID.Validate(); err != nil {
		return CreateTransporterCommand{}, err
	}
	return CreateTransporterCommand{
		transporterID: transporterID,
		name:          name,
		email:         email,
		phone:         phone,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTransporterCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransporterCommandIsNotConstructed)
}

func (c CreateTransporterCommand) TransporterID() kernel.UUID { return c.transporterID }
func (c CreateTransporterCommand) Name() string               { return c.name }
func (c CreateTransporterCommand) Email() string              { return c.email }
func (c CreateTransporterCommand) Phone() string              { return c.phone }

// CreateAgentCommand registers a clearing agent at a border post.
type CreateAgentCommand struct {
	agentID    kernel.UUID
	name       string
	email      string
	borderPost string

	guard guard.ConstructorGuard
}

func NewCreateAgentCommand(agentID kernel.UUID, name, email, borderPost string) (CreateAgentCommand, error) {
	if err := agentID.Validate(); err != nil {
		return CreateAgentCommand{}, err
	}
	return CreateAgentCommand{
		agentID:    agentID,
		name:       name,
		email:      email,
		borderPost: borderPost,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

func (c CreateAgentCommand) AgentID() kernel.UUID { return c.agentID }
func (c CreateAgentCommand) Name() string         { return c.name }
func (c CreateAgentCommand) Email() string        { return c.email }
func (c CreateAgentCommand) BorderPost() string   { return c.borderPost }
