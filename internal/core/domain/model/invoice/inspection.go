package invoice

import (
	"fmt"
	"strings"

	"doctrack/internal/pkg/errs"
)

// InspectionKind distinguishes the two pre-shipment inspections.
type InspectionKind int

const (
	UnknownInspection InspectionKind = iota
	// QC is the internal quality control inspection.
	QC
	// BV is the Bureau Veritas third-party inspection.
	BV
)

func (k InspectionKind) String() string {
	switch k {
	case QC:
		return "qc"
	case BV:
		return "bv"
	default:
		return "unknown"
	}
}

func ParseInspectionKind(s string) (InspectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "qc":
		return QC, nil
	case "bv":
		return BV, nil
	}
	return UnknownInspection, errs.NewValueIsInvalidErrorWithCause("inspection is invalid", fmt.Errorf("%q is not a known inspection", s))
}

// InspectionStatus tracks one inspection. The zero value means the
// inspection does not apply to the invoice.
type InspectionStatus int

const (
	InspectionNotRequired InspectionStatus = iota
	InspectionPending
	InspectionPassed
	InspectionFailed
)

func getInspectionStrings() map[InspectionStatus]string {
	return map[InspectionStatus]string{
		InspectionNotRequired: "not_required",
		InspectionPending:     "pending",
		InspectionPassed:      "passed",
		InspectionFailed:      "failed",
	}
}

func (s InspectionStatus) String() string {
	if str, ok := getInspectionStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s InspectionStatus) Validate() error {
	if _, ok := getInspectionStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("inspection status is invalid", fmt.Errorf("%d is not a valid inspection status", s))
	}
	return nil
}

// IsRequired reports whether the inspection applies.
func (s InspectionStatus) IsRequired() bool {
	return s != InspectionNotRequired
}

// Satisfied reports whether the inspection does not hold up dispatch.
func (s InspectionStatus) Satisfied() bool {
	return s == InspectionNotRequired || s == InspectionPassed
}

// Require returns the status after the requirement flag is set or cleared.
// Recorded results survive setting the flag again.
func (s InspectionStatus) Require(required bool) InspectionStatus {
	if !required {
		return InspectionNotRequired
	}
	if s == InspectionNotRequired {
		return InspectionPending
	}
	return s
}

// Record validates a new inspection result. Only Passed or Failed can be
// recorded, only for a required inspection, and a Passed result is final.
func (s InspectionStatus) Record(result InspectionStatus) (InspectionStatus, error) {
	if result != InspectionPassed && result != InspectionFailed {
		return s, errs.NewValueIsInvalidErrorWithCause("inspection result is invalid",
			fmt.Errorf("%s is not a recordable result", result))
	}
	switch s {
	case InspectionPending, InspectionFailed:
		return result, nil
	case InspectionNotRequired:
		return s, errs.NewValueIsInvalidErrorWithCause("inspection is invalid",
			fmt.Errorf("inspection is not required"))
	default:
		return s, errs.NewValueIsInvalidErrorWithCause("inspection is invalid",
			fmt.Errorf("%s inspection cannot be recorded again", s))
	}
}

// ParseInspectionResult reads "passed" or "failed".
func ParseInspectionResult(s string) (InspectionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "passed":
		return InspectionPassed, nil
	case "failed":
		return InspectionFailed, nil
	}
	return InspectionNotRequired, errs.NewValueIsInvalidErrorWithCause("inspection result is invalid", fmt.Errorf("%q is not passed or failed", s))
}
