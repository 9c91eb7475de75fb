package invoice

// transition is one row of the workflow table. route, when set, picks the
// target stage from the invoice state instead of to.
type transition struct {
	to    Stage
	gate  []Condition
	route func(*Invoice) Stage
}

// getWorkflow returns the (stage, action) -> transition table.
func getWorkflow() map[Stage]map[Action]transition {
	//nolint:exhaustive // only stages with outgoing transitions are listed
	return map[Stage]map[Action]transition{
		KeyAccounts: {
			SubmitToPlanning: {
				to:   TransportPlanning,
				gate: []Condition{CommercialInvoiceAttached, PackingListAttached},
			},
		},
		TransportPlanning: {
			ConfirmLoad: {
				to:   Loading,
				gate: []Condition{LoadConfirmationIssued},
			},
			ReturnToKeyAccounts: {
				to: KeyAccounts,
			},
		},
		Loading: {
			MarkReadyDispatch: {
				to:    ReadyDispatch,
				gate:  []Condition{QCPassed, BVPassed},
				route: routeAfterLoading,
			},
		},
		FeriApplication: {
			ApproveFeri: {
				to:   ReadyDispatch,
				gate: []Condition{QCPassed, BVPassed, FeriApprovedWhenRequired, FeriReferenceRecorded},
			},
		},
		ReadyDispatch: {
			Dispatch: {
				to:   InTransit,
				gate: []Condition{ManifestGenerated, FeriApprovedWhenRequired},
			},
		},
		InTransit: {
			ConfirmDelivery: {
				to:   Finance,
				gate: []Condition{DeliveryNoteAttached},
			},
		},
		Finance: {
			Close: {
				to: Closed,
			},
		},
	}
}

// routeAfterLoading sends DRC cargo without an approved FERI to the FERI
// department before it can be dispatched.
func routeAfterLoading(i *Invoice) Stage {
	if !i.feri.Satisfied() {
		return FeriApplication
	}
	return ReadyDispatch
}

func lookupTransition(stage Stage, action Action) (transition, bool) {
	t, ok := getWorkflow()[stage][action]
	return t, ok
}

// Actions lists the actions defined for a stage in table order.
func (s Stage) Actions() []Action {
	defined := getWorkflow()[s]
	actions := make([]Action, 0, len(defined))
	for a := SubmitToPlanning; a <= Close; a++ {
		if _, ok := defined[a]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}
