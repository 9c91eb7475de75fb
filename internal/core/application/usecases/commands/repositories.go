// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"doctrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// TransportRepoFactory provides access to the transport repository within a transaction.
	TransportRepoFactory interface {
		TransportRepository() ports.TransportRepository
	}

	// InvoiceUoW manages transactions for invoice-only operations.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// DocumentUoW manages transactions for document-only operations.
	DocumentUoW interface {
		TxManager
		DocumentRepoFactory
	}

	DocumentUoWFactory interface {
		Create() DocumentUoW
	}

	// IngestionUoW manages transactions that move reviewed document data
	// onto invoices.
	IngestionUoW interface {
		TxManager
		DocumentRepoFactory
		InvoiceRepoFactory
	}

	IngestionUoWFactory interface {
		Create() IngestionUoW
	}

	// TransportUoW manages transactions for transporter and agent reference data.
	TransportUoW interface {
		TxManager
		TransportRepoFactory
	}

	TransportUoWFactory interface {
		Create() TransportUoW
	}

	// UoW manages transactions across invoices and transport paperwork.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   invoiceRepo := uow.InvoiceRepository()
	//   transportRepo := uow.TransportRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		InvoiceRepoFactory
		DocumentRepoFactory
		TransportRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
