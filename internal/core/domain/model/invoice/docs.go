// Package invoice implements the export invoice aggregate and the workflow
// that moves it between departments.
//
// Every stage has exactly one owning department:
//
//	KeyAccounts ──> TransportPlanning ──> Loading ──┬──────────────────────> ReadyDispatch ──> InTransit ──> Finance ──> Closed
//	     ^                 │                        └──> FeriApplication ──────────^
//	     └─────────────────┘
//
// Transitions are driven by a lookup table of (stage, action) pairs. Each
// entry carries a gate: a list of conditions (documents attached, QC/BV
// passed when required, FERI approved when required, paperwork issued). A
// gated action whose conditions are unmet is refused, the invoice is flagged
// as blocked with the unmet conditions as reasons, and the stage does not
// move. Block reasons are re-evaluated whenever documents, inspections or
// paperwork change, so an invoice unblocks itself as soon as the missing
// pieces arrive; it still needs an explicit action to advance.
package invoice
