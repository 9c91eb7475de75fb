package invoice

import (
	"fmt"
	"strings"

	"doctrack/internal/pkg/errs"
)

// Stage is the position of an invoice in the export workflow.
type Stage int

const (
	// UnknownStage catches uninitialised values.
	UnknownStage Stage = iota

	// KeyAccounts: the key-accounts manager collects the commercial invoice
	// and packing list and decides which inspections apply.
	KeyAccounts

	// TransportPlanning: the transport planner books a truck.
	TransportPlanning

	// Loading: operations loads the truck and records QC/BV inspections.
	Loading

	// ReadyDispatch: inspections are done; waiting for the manifest.
	ReadyDispatch

	// FeriApplication: the FERI department obtains the FERI for DRC bound cargo.
	FeriApplication

	// InTransit: the truck has left; waiting for proof of delivery.
	InTransit

	// Finance: delivered; finance closes the file.
	Finance

	// Closed is final.
	Closed
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		UnknownStage:      "unknown",
		KeyAccounts:       "key_accounts",
		TransportPlanning: "transport_planning",
		Loading:           "loading",
		ReadyDispatch:     "ready_dispatch",
		FeriApplication:   "feri_application",
		InTransit:         "in_transit",
		Finance:           "finance",
		Closed:            "closed",
	}
}

func getStageOwners() map[Stage]Owner {
	//nolint:exhaustive // UnknownStage has no owner
	return map[Stage]Owner{
		KeyAccounts:       KeyAccountsManager,
		TransportPlanning: TransportPlanner,
		Loading:           Operations,
		ReadyDispatch:     Operations,
		FeriApplication:   FeriDepartment,
		InTransit:         Operations,
		Finance:           FinanceDepartment,
		Closed:            NoOwner,
	}
}

func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Owner returns the department owning the stage.
func (s Stage) Owner() Owner {
	return getStageOwners()[s]
}

func (s Stage) Validate() error {
	if _, ok := getStageOwners()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// IsDispatched reports whether the goods have left, after which commercial
// details and requirements are frozen.
func (s Stage) IsDispatched() bool {
	return s == InTransit || s == Finance || s == Closed
}

// ParseStage reads the API name of a stage.
func ParseStage(s string) (Stage, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for st, name := range getStageStrings() {
		if st != UnknownStage && name == needle {
			return st, nil
		}
	}
	return UnknownStage, errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%q is not a known stage", s))
}
