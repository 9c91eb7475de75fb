package services

import (
	"fmt"
	"time"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/model/transport"
	"doctrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ManifestBuilder assembles the manifest for the invoices of a confirmed
// load and links it to each invoice.
//
// Business rules:
//   - every invoice must be ReadyDispatch and belong to the confirmed load
//   - totals add weights and package counts; values are summed per currency
type ManifestBuilder struct{}

func NewManifestBuilder() ManifestBuilder {
	return ManifestBuilder{}
}

func (b ManifestBuilder) Build(
	id kernel.UUID,
	lc *transport.LoadConfirmation,
	agent *transport.Agent,
	invoices []*invoice.Invoice,
	at time.Time,
) (*transport.Manifest, error) {
	if lc == nil {
		return nil, errs.NewValueIsRequiredError("load confirmation")
	}
	if err := agent.Validate(); err != nil {
		return nil, err
	}
	if err := requireStage(invoices, invoice.ReadyDispatch); err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		if inv.LoadConfirmationID() == nil || !inv.LoadConfirmationID().IsEqual(lc.ID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("invoices",
				fmt.Errorf("invoice %s was not loaded under confirmation %s", inv.Number(), lc.ID()))
		}
	}

	totals, err := b.totals(invoices)
	if err != nil {
		return nil, err
	}

	m, err := transport.NewManifest(id, lc.ID(), agent.ID(), invoiceIDs(invoices), totals, at)
	if err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		if err = inv.AttachManifest(m.ID(), at); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (b ManifestBuilder) totals(invoices []*invoice.Invoice) (transport.Totals, error) {
	var t transport.Totals
	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, inv := range invoices {
		t.GrossWeight = t.GrossWeight.Add(inv.GrossWeight())
		t.PackageCount += inv.PackageCount()
		if v := inv.Value(); v != nil {
			if _, ok := sums[v.Currency()]; !ok {
				order = append(order, v.Currency())
			}
			sums[v.Currency()] = sums[v.Currency()].Add(v.Value())
		}
	}

	for _, currency := range order {
		amount, err := kernel.NewAmount(sums[currency], currency)
		if err != nil {
			return transport.Totals{}, err
		}
		t.Values = append(t.Values, amount)
	}
	return t, nil
}
