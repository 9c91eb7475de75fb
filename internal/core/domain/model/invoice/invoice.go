package invoice

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
)

// SystemActor is recorded in the history when no user is known.
const SystemActor = "system"

// MaxPackageCount bounds the packages on one invoice.
const MaxPackageCount = 100000

// ErrInvoiceIsNotConstructed is returned for invoices not built by NewInvoice or Restore.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// HistoryEntry records one completed stage transition.
type HistoryEntry struct {
	From   Stage
	To     Stage
	Action Action
	Actor  string
	At     time.Time
}

// Check is the gate report of one action available from the current stage.
type Check struct {
	Action Action
	To     Stage
	Unmet  []Condition
}

// Ready reports whether the action would succeed now.
func (c Check) Ready() bool {
	return len(c.Unmet) == 0
}

// Invoice is the aggregate root of an export shipment. It tracks commercial
// details, inspection and FERI requirements, attached documents and
// paperwork, and the workflow stage with its owner.
//
// Invariants:
//   - the invoice number is set and never changes
//   - the owner always equals Stage().Owner()
//   - blocked is true exactly when blockReasons is non-empty
//   - commercial details and requirements are frozen once dispatched
type Invoice struct {
	id           kernel.UUID
	number       string
	customerName string
	destination  string
	value        *kernel.Amount
	grossWeight  kernel.Weight
	packageCount int

	stage Stage

	qc            InspectionStatus
	bv            InspectionStatus
	feri          FeriStatus
	feriReference string

	documents          map[document.Type]kernel.UUID
	transportRequestID *kernel.UUID
	loadConfirmationID *kernel.UUID
	manifestID         *kernel.UUID

	blocked      bool
	blockReasons []Condition
	history      []HistoryEntry

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewInvoice opens an invoice at the key-accounts stage.
func NewInvoice(id kernel.UUID, number string, at time.Time) (*Invoice, error) {
	i := &Invoice{
		stage:         KeyAccounts,
		documents:     make(map[document.Type]kernel.UUID),
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}

	if err := errors.Join(i.setID(id), i.setNumber(number)); err != nil {
		return nil, err
	}

	return i, nil
}

func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Invoice) ID() kernel.UUID                  { return i.id }
func (i *Invoice) Number() string                   { return i.number }
func (i *Invoice) CustomerName() string             { return i.customerName }
func (i *Invoice) Destination() string              { return i.destination }
func (i *Invoice) Value() *kernel.Amount            { return i.value }
func (i *Invoice) GrossWeight() kernel.Weight       { return i.grossWeight }
func (i *Invoice) PackageCount() int                { return i.packageCount }
func (i *Invoice) Stage() Stage                     { return i.stage }
func (i *Invoice) Owner() Owner                     { return i.stage.Owner() }
func (i *Invoice) QC() InspectionStatus             { return i.qc }
func (i *Invoice) BV() InspectionStatus             { return i.bv }
func (i *Invoice) Feri() FeriStatus                 { return i.feri }
func (i *Invoice) FeriReference() string            { return i.feriReference }
func (i *Invoice) TransportRequestID() *kernel.UUID { return i.transportRequestID }
func (i *Invoice) LoadConfirmationID() *kernel.UUID { return i.loadConfirmationID }
func (i *Invoice) ManifestID() *kernel.UUID         { return i.manifestID }
func (i *Invoice) IsBlocked() bool                  { return i.blocked }
func (i *Invoice) CreatedAt() time.Time             { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time             { return i.updatedAt }

// BlockReasons returns the unmet conditions of the last refused transition.
func (i *Invoice) BlockReasons() []Condition {
	return slices.Clone(i.blockReasons)
}

// Documents returns the attached document ids by type.
func (i *Invoice) Documents() map[document.Type]kernel.UUID {
	return maps.Clone(i.documents)
}

// History returns the completed transitions, oldest first.
func (i *Invoice) History() []HistoryEntry {
	return slices.Clone(i.history)
}

// UpdateDetails sets the commercial details read from the commercial
// invoice. Empty strings and a nil value leave the current data untouched.
// A DRC destination makes FERI mandatory.
func (i *Invoice) UpdateDetails(customerName string, destination string, value *kernel.Amount, at time.Time) error {
	if err := i.ensureNotDispatched("update details"); err != nil {
		return err
	}

	customerName = strings.TrimSpace(customerName)
	destination = strings.ToUpper(strings.TrimSpace(destination))

	if destination != "" && !isCountryCode(destination) {
		return errs.NewValueIsInvalidErrorWithCause("destination country", fmt.Errorf("%q is not an ISO 3166 alpha-2 code", destination))
	}
	if value != nil {
		if err := value.Validate(); err != nil {
			return err
		}
	}

	if customerName != "" {
		i.customerName = customerName
	}
	if destination != "" {
		i.destination = destination
		if destination == FeriCountry {
			i.feri = i.feri.Require(true)
		}
	}
	if value != nil {
		v := *value
		i.value = &v
	}
	i.touch(at)
	return nil
}

// UpdatePacking sets weight and package count read from the packing list.
func (i *Invoice) UpdatePacking(grossWeight kernel.Weight, packageCount int, at time.Time) error {
	if err := i.ensureNotDispatched("update packing"); err != nil {
		return err
	}
	if packageCount < 0 || packageCount > MaxPackageCount {
		return errs.NewValueIsOutOfRangeError("package count", packageCount, 0, MaxPackageCount)
	}

	i.grossWeight = grossWeight
	i.packageCount = packageCount
	i.touch(at)
	return nil
}

// SetRequirements records which inspections and whether FERI apply.
// Clearing FERI also clears its reference.
func (i *Invoice) SetRequirements(qcRequired, bvRequired, feriRequired bool, at time.Time) error {
	if err := i.ensureNotDispatched("change requirements"); err != nil {
		return err
	}
	if !feriRequired && i.stage == FeriApplication {
		return errs.NewValueIsInvalidErrorWithCause("feri requirement",
			errors.New("cannot drop feri while the invoice is with the feri department"))
	}
	if i.inspectionsClosed() && (qcRequired != i.qc.IsRequired() || bvRequired != i.bv.IsRequired()) {
		return errs.NewValueIsInvalidErrorWithCause("inspection requirement",
			fmt.Errorf("inspection requirements are fixed once loading is done, invoice is %s", i.stage))
	}

	i.qc = i.qc.Require(qcRequired)
	i.bv = i.bv.Require(bvRequired)
	i.feri = i.feri.Require(feriRequired)
	if !feriRequired {
		i.feriReference = ""
	}
	i.refreshBlock()
	i.touch(at)
	return nil
}

// inspectionsClosed reports whether the invoice has left Loading, where QC
// and BV are carried out.
func (i *Invoice) inspectionsClosed() bool {
	return i.stage == FeriApplication || i.stage == ReadyDispatch
}

// RecordInspection stores a QC or BV result. Inspections happen while the
// truck is loaded.
func (i *Invoice) RecordInspection(kind InspectionKind, result InspectionStatus, at time.Time) error {
	if i.stage != Loading {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("inspections can only be recorded while loading, invoice is %s", i.stage))
	}

	var err error
	switch kind {
	case QC:
		i.qc, err = i.qc.Record(result)
	case BV:
		i.bv, err = i.bv.Record(result)
	default:
		err = errs.NewValueIsInvalidErrorWithCause("inspection is invalid", fmt.Errorf("%s is not a known inspection", kind))
	}
	if err != nil {
		return err
	}

	i.refreshBlock()
	i.touch(at)
	return nil
}

// RecordFeri updates the FERI application. An approval needs a reference,
// given now or earlier. Approving while the invoice waits at the FERI
// department moves it to ReadyDispatch.
func (i *Invoice) RecordFeri(status FeriStatus, reference string, actor string, at time.Time) error {
	if i.stage.IsDispatched() {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("feri cannot change once the invoice is %s", i.stage))
	}

	next, err := i.feri.Record(status)
	if err != nil {
		return err
	}

	reference = strings.TrimSpace(reference)
	if reference == "" {
		reference = i.feriReference
	}
	if next == FeriApproved && reference == "" {
		return errs.NewValueIsRequiredError("feri reference")
	}

	i.feri = next
	i.feriReference = reference
	i.refreshBlock()
	i.touch(at)

	if next == FeriApproved && i.stage == FeriApplication {
		return i.Perform(ApproveFeri, actor, at)
	}
	return nil
}

// AttachDocument links an acknowledged document. A newer document of the
// same type replaces the previous one.
func (i *Invoice) AttachDocument(docType document.Type, documentID kernel.UUID, at time.Time) error {
	if err := errors.Join(docType.Validate(), documentID.Validate()); err != nil {
		return err
	}
	if i.stage == Closed {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", errors.New("closed invoices do not accept documents"))
	}

	i.documents[docType] = documentID
	i.refreshBlock()
	i.touch(at)
	return nil
}

// HasDocument reports whether a document of the type is attached.
func (i *Invoice) HasDocument(docType document.Type) bool {
	return i.hasDocument(docType)
}

// AttachTransportRequest links the transport request booked for the invoice.
func (i *Invoice) AttachTransportRequest(requestID kernel.UUID, at time.Time) error {
	if err := i.attachPaperwork(TransportPlanning, "transport request", requestID); err != nil {
		return err
	}
	i.transportRequestID = &requestID
	i.touch(at)
	return nil
}

// AttachLoadConfirmation links the transporter's load confirmation.
func (i *Invoice) AttachLoadConfirmation(confirmationID kernel.UUID, at time.Time) error {
	if err := i.attachPaperwork(TransportPlanning, "load confirmation", confirmationID); err != nil {
		return err
	}
	i.loadConfirmationID = &confirmationID
	i.refreshBlock()
	i.touch(at)
	return nil
}

// AttachManifest links the manifest the invoice travels on.
func (i *Invoice) AttachManifest(manifestID kernel.UUID, at time.Time) error {
	if err := i.attachPaperwork(ReadyDispatch, "manifest", manifestID); err != nil {
		return err
	}
	i.manifestID = &manifestID
	i.refreshBlock()
	i.touch(at)
	return nil
}

// Perform applies a workflow action. Actions not defined for the current
// stage fail with ErrValueIsInvalid and leave the invoice unchanged. A
// gated action with unmet conditions fails with a TransitionIsBlockedError
// and marks the invoice blocked; callers persist that state.
func (i *Invoice) Perform(action Action, actor string, at time.Time) error {
	if err := action.Validate(); err != nil {
		return err
	}

	t, ok := lookupTransition(i.stage, action)
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid",
			fmt.Errorf("%s is not allowed from %s", action, i.stage))
	}

	if unmet := i.unmet(t.gate); len(unmet) > 0 {
		i.blocked = true
		i.blockReasons = unmet
		i.touch(at)
		return errs.NewTransitionIsBlockedError(i.stage.String(), action.String(), describe(unmet))
	}

	next := t.to
	if t.route != nil {
		next = t.route(i)
	}

	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = SystemActor
	}

	i.history = append(i.history, HistoryEntry{From: i.stage, To: next, Action: action, Actor: actor, At: at})
	i.stage = next
	i.blocked = false
	i.blockReasons = nil
	i.touch(at)
	return nil
}

// Checklist evaluates every action defined for the current stage without
// changing the invoice.
func (i *Invoice) Checklist() []Check {
	actions := i.stage.Actions()
	checks := make([]Check, 0, len(actions))
	for _, a := range actions {
		t, _ := lookupTransition(i.stage, a)
		to := t.to
		if t.route != nil {
			to = t.route(i)
		}
		checks = append(checks, Check{Action: a, To: to, Unmet: i.unmet(t.gate)})
	}
	return checks
}

func (i *Invoice) unmet(gate []Condition) []Condition {
	var unmet []Condition
	for _, c := range gate {
		if !c.satisfiedBy(i) {
			unmet = append(unmet, c)
		}
	}
	return unmet
}

// refreshBlock drops block reasons that are now satisfied and clears the
// block once none remain.
func (i *Invoice) refreshBlock() {
	if !i.blocked {
		return
	}
	i.blockReasons = i.unmet(i.blockReasons)
	if len(i.blockReasons) == 0 {
		i.blocked = false
		i.blockReasons = nil
	}
}

func (i *Invoice) hasDocument(docType document.Type) bool {
	_, ok := i.documents[docType]
	return ok
}

func (i *Invoice) attachPaperwork(expected Stage, name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if i.stage != expected {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("%s can only be attached in %s, invoice %s is %s", name, expected, i.number, i.stage))
	}
	return nil
}

func (i *Invoice) ensureNotDispatched(op string) error {
	if i.stage.IsDispatched() {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("cannot %s once the invoice is %s", op, i.stage))
	}
	return nil
}

func (i *Invoice) touch(at time.Time) {
	i.updatedAt = at
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	i.number = number
	return nil
}

func isCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
