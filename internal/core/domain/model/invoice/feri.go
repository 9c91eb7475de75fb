package invoice

import (
	"fmt"
	"strings"

	"doctrack/internal/pkg/errs"
)

// FeriCountry is the destination that makes a FERI (Fiche Electronique de
// Renseignement a l'Importation) mandatory.
const FeriCountry = "CD"

// FeriStatus tracks the FERI application. The zero value means no FERI is
// needed for the invoice.
type FeriStatus int

const (
	FeriNotRequired FeriStatus = iota
	FeriPending
	FeriApplied
	FeriApproved
	FeriRejected
)

func getFeriStrings() map[FeriStatus]string {
	return map[FeriStatus]string{
		FeriNotRequired: "not_required",
		FeriPending:     "pending",
		FeriApplied:     "applied",
		FeriApproved:    "approved",
		FeriRejected:    "rejected",
	}
}

func (s FeriStatus) String() string {
	if str, ok := getFeriStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s FeriStatus) Validate() error {
	if _, ok := getFeriStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("feri status is invalid", fmt.Errorf("%d is not a valid feri status", s))
	}
	return nil
}

func (s FeriStatus) IsRequired() bool {
	return s != FeriNotRequired
}

// Satisfied reports whether FERI does not hold up dispatch.
func (s FeriStatus) Satisfied() bool {
	return s == FeriNotRequired || s == FeriApproved
}

// Require returns the status after the requirement flag is set or cleared.
func (s FeriStatus) Require(required bool) FeriStatus {
	if !required {
		return FeriNotRequired
	}
	if s == FeriNotRequired {
		return FeriPending
	}
	return s
}

// Record validates an update of the application:
//
//	Pending ──> Applied ──> Approved
//	   │  ^        │
//	   │  └─ Rejected <┘
//	   └──────────────> Approved
//
// Approved is final.
func (s FeriStatus) Record(next FeriStatus) (FeriStatus, error) {
	allowed := map[FeriStatus][]FeriStatus{
		FeriPending:  {FeriApplied, FeriApproved},
		FeriApplied:  {FeriApproved, FeriRejected},
		FeriRejected: {FeriApplied},
	}
	if s == FeriNotRequired {
		return s, errs.NewValueIsInvalidErrorWithCause("feri is invalid", fmt.Errorf("feri is not required"))
	}
	for _, candidate := range allowed[s] {
		if candidate == next {
			return next, nil
		}
	}
	return s, errs.NewValueIsInvalidErrorWithCause("feri status is invalid",
		fmt.Errorf("cannot move feri from %s to %s", s, next))
}

// ParseFeriStatus reads "applied", "approved" or "rejected".
func ParseFeriStatus(s string) (FeriStatus, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for st, name := range getFeriStrings() {
		if name == needle {
			return st, nil
		}
	}
	return FeriNotRequired, errs.NewValueIsInvalidErrorWithCause("feri status is invalid", fmt.Errorf("%q is not a known feri status", s))
}
