package services

import (
	"fmt"
	"strings"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DocumentPopulator applies the reviewed fields of a document to the invoice
// it belongs to and attaches the document.
//
// Population rules by document type:
//   - CommercialInvoice: customer name, destination country, total value and currency
//   - PackingList: gross weight and package count, falling back to line item sums
//   - FeriCertificate: a feri_reference records the FERI as applied when it is pending
//   - DeliveryNote, Other: attach only
//
// Example usage:
//
//	fields := doc.Extraction().Merge(corrections)
//	number, err := services.InvoiceNumber(fields)
//	...
//	err = doc.Acknowledge(reviewer, inv.ID(), corrections, now)
//	err = populator.Populate(doc, inv, reviewer, now)
type DocumentPopulator struct{}

func NewDocumentPopulator() DocumentPopulator {
	return DocumentPopulator{}
}

// InvoiceNumber returns the invoice number a document refers to.
func InvoiceNumber(fields map[string]string) (string, error) {
	number := strings.TrimSpace(fields[document.FieldInvoiceNumber])
	if number == "" {
		return "", errs.NewValueIsRequiredError(document.FieldInvoiceNumber)
	}
	return number, nil
}

// Populate copies the document fields to the invoice. The document must
// already be acknowledged for that invoice.
func (p DocumentPopulator) Populate(doc *document.Document, inv *invoice.Invoice, actor string, at time.Time) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := inv.Validate(); err != nil {
		return err
	}
	if doc.Status() != document.Acknowledged || doc.InvoiceID() == nil || !doc.InvoiceID().IsEqual(inv.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("document is invalid",
			fmt.Errorf("document %s is not acknowledged for invoice %s", doc.ID(), inv.Number()))
	}

	fields := doc.Fields()

	var err error
	switch doc.Type() {
	case document.CommercialInvoice:
		err = p.populateDetails(inv, fields, at)
	case document.PackingList:
		err = p.populatePacking(inv, fields, doc.Extraction(), at)
	case document.FeriCertificate:
		err = p.populateFeri(inv, fields, actor, at)
	case document.DeliveryNote, document.Other:
	default:
		err = doc.Type().Validate()
	}
	if err != nil {
		return err
	}

	return inv.AttachDocument(doc.Type(), doc.ID(), at)
}

func (p DocumentPopulator) populateDetails(inv *invoice.Invoice, fields map[string]string, at time.Time) error {
	var value *kernel.Amount
	if raw := fields[document.FieldTotalValue]; raw != "" {
		currency := fields[document.FieldCurrency]
		if currency == "" {
			return errs.NewValueIsRequiredError(document.FieldCurrency)
		}
		amount, err := kernel.ParseAmount(raw, currency)
		if err != nil {
			return err
		}
		value = &amount
	}

	return inv.UpdateDetails(fields[document.FieldCustomerName], fields[document.FieldDestinationCountry], value, at)
}

func (p DocumentPopulator) populatePacking(inv *invoice.Invoice, fields map[string]string, ext document.Extraction, at time.Time) error {
	weight := inv.GrossWeight()
	if raw := fields[document.FieldGrossWeight]; raw != "" {
		w, err := kernel.ParseWeight(raw)
		if err != nil {
			return err
		}
		weight = w
	} else if len(ext.LineItems) > 0 {
		w, err := kernel.NewWeight(ext.TotalGrossWeight())
		if err != nil {
			return err
		}
		weight = w
	}

	packages := inv.PackageCount()
	if raw := fields[document.FieldPackageCount]; raw != "" {
		d, err := kernel.ParseDecimal(raw)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(document.FieldPackageCount, err)
		}
		if !d.IsInteger() {
			return errs.NewValueIsInvalidErrorWithCause(document.FieldPackageCount, fmt.Errorf("%s is not a whole number", raw))
		}
		if packages, err = toPackageCount(d); err != nil {
			return err
		}
	} else if len(ext.LineItems) > 0 {
		var err error
		if packages, err = toPackageCount(ext.TotalQuantity().Ceil()); err != nil {
			return err
		}
	}

	return inv.UpdatePacking(weight, packages, at)
}

// toPackageCount converts a whole number within the invoice limits.
func toPackageCount(d decimal.Decimal) (int, error) {
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(invoice.MaxPackageCount)) {
		return 0, errs.NewValueIsOutOfRangeError(document.FieldPackageCount, d.String(), 0, invoice.MaxPackageCount)
	}
	return int(d.IntPart()), nil
}

func (p DocumentPopulator) populateFeri(inv *invoice.Invoice, fields map[string]string, actor string, at time.Time) error {
	reference := fields[document.FieldFeriReference]
	if reference == "" || inv.Feri() != invoice.FeriPending {
		return nil
	}
	return inv.RecordFeri(invoice.FeriApplied, reference, actor, at)
}
