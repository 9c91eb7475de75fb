package commands

import (
	"errors"
	"strings"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/pkg/errs"
	"doctrack/internal/pkg/guard"
)

var ErrReceiveExtractionCommandIsNotConstructed = errors.New(
	"ReceiveExtractionCommand must be created via NewReceiveExtractionCommand constructor",
)

// ReceiveExtractionCommand is the extraction engine's callback. A non-empty
// failure reports that the engine could not read the document.
type ReceiveExtractionCommand struct {
	reference  string
	docType    document.Type
	extraction document.Extraction
	failure    string

	guard guard.ConstructorGuard
}

// NewReceiveExtractionCommand accepts the engine's document type name; an
// empty name keeps the type given at upload.
func NewReceiveExtractionCommand(
	reference string,
	docType string,
	fields map[string]string,
	lineItems []document.LineItem,
	failure string,
) (ReceiveExtractionCommand, error) {
	cmd := ReceiveExtractionCommand{
		reference:  strings.TrimSpace(reference),
		extraction: document.NewExtraction(fields, lineItems),
		failure:    strings.TrimSpace(failure),
		guard:      guard.NewConstructorGuard(),
	}

	var refErr, typeErr error
	if cmd.reference == "" {
		refErr = errs.NewValueIsRequiredError("extraction reference")
	}
	if strings.TrimSpace(docType) != "" {
		cmd.docType, typeErr = document.ParseType(docType)
	}
	if err := errors.Join(refErr, typeErr); err != nil {
		return ReceiveExtractionCommand{}, err
	}

	return cmd, nil
}

func (c ReceiveExtractionCommand) Validate() error {
	return c.guard.Validate(ErrReceiveExtractionCommandIsNotConstructed)
}

func (c ReceiveExtractionCommand) Reference() string               { return c.reference }
func (c ReceiveExtractionCommand) Type() document.Type             { return c.docType }
func (c ReceiveExtractionCommand) Extraction() document.Extraction { return c.extraction }
func (c ReceiveExtractionCommand) Failure() string                 { return c.failure }
func (c ReceiveExtractionCommand) IsFailure() bool                 { return c.failure != "" }
