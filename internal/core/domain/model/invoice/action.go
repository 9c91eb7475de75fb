package invoice

import (
	"fmt"
	"strings"

	"doctrack/internal/pkg/errs"
)

// Action is a request to move an invoice along the workflow.
type Action int

const (
	UnknownAction Action = iota
	SubmitToPlanning
	ReturnToKeyAccounts
	ConfirmLoad
	MarkReadyDispatch
	ApproveFeri
	Dispatch
	ConfirmDelivery
	Close
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction:       "unknown",
		SubmitToPlanning:    "submit_to_planning",
		ReturnToKeyAccounts: "return_to_key_accounts",
		ConfirmLoad:         "confirm_load",
		MarkReadyDispatch:   "mark_ready_dispatch",
		ApproveFeri:         "approve_feri",
		Dispatch:            "dispatch",
		ConfirmDelivery:     "confirm_delivery",
		Close:               "close",
	}
}

func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

func (a Action) Validate() error {
	if a <= UnknownAction || a > Close {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// IsManual reports whether a user may request the action directly.
// ConfirmLoad follows from issuing a load confirmation and ApproveFeri from
// recording an approved FERI.
func (a Action) IsManual() bool {
	return a != ConfirmLoad && a != ApproveFeri && a.Validate() == nil
}

// ParseAction reads the API name of an action.
func ParseAction(s string) (Action, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for a, name := range getActionStrings() {
		if a != UnknownAction && name == needle {
			return a, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%q is not a known action", s))
}
