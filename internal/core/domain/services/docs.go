// Package services provides domain services that coordinate several
// aggregates of the export workflow.
//
// The package includes:
//   - DocumentPopulator: copies acknowledged document data onto an invoice
//   - TransportBooker: books transport for invoices and applies load confirmations
//   - ManifestBuilder: assembles the manifest of a confirmed load
package services
