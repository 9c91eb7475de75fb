package invoice

import (
	"fmt"
	"strings"

	"doctrack/internal/pkg/errs"
)

// Owner is the department responsible for an invoice at its current stage.
type Owner int

const (
	NoOwner Owner = iota
	KeyAccountsManager
	TransportPlanner
	Operations
	FeriDepartment
	FinanceDepartment
)

func getOwnerStrings() map[Owner]string {
	return map[Owner]string{
		NoOwner:            "none",
		KeyAccountsManager: "key_accounts_manager",
		TransportPlanner:   "transport_planner",
		Operations:         "operations",
		FeriDepartment:     "feri_department",
		FinanceDepartment:  "finance",
	}
}

func (o Owner) String() string {
	if str, ok := getOwnerStrings()[o]; ok {
		return str
	}
	return "none"
}

func (o Owner) Validate() error {
	if _, ok := getOwnerStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("owner is invalid", fmt.Errorf("%d is not a valid owner", o))
	}
	return nil
}

// ParseOwner reads the API name of a department.
func ParseOwner(s string) (Owner, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for o, name := range getOwnerStrings() {
		if name == needle {
			return o, nil
		}
	}
	return NoOwner, errs.NewValueIsInvalidErrorWithCause("owner is invalid", fmt.Errorf("%q is not a known owner", s))
}
