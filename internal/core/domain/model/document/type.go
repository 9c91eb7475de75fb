package document

import (
	"fmt"
	"strings"

	"doctrack/internal/pkg/errs"
)

// Type classifies a shipping document.
type Type int

const (
	UnknownType Type = iota
	CommercialInvoice
	PackingList
	DeliveryNote
	FeriCertificate
	Other
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:       "unknown",
		CommercialInvoice: "commercial_invoice",
		PackingList:       "packing_list",
		DeliveryNote:      "delivery_note",
		FeriCertificate:   "feri_certificate",
		Other:             "other",
	}
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects UnknownType and out-of-range values.
func (t Type) Validate() error {
	if t <= UnknownType || t > Other {
		return errs.NewValueIsInvalidErrorWithCause("document type is invalid", fmt.Errorf("%d is not a valid document type", t))
	}
	return nil
}

// ParseType reads the snake_case name used by the API and the extraction engine.
func ParseType(s string) (Type, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for t, name := range getTypeStrings() {
		if t != UnknownType && name == needle {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("document type is invalid", fmt.Errorf("%q is not a known document type", s))
}
