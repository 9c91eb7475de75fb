package document

import (
	"fmt"

	"doctrack/internal/pkg/errs"
)

// Status is the ingestion state of a document.
type Status int

const (
	UnknownStatus Status = iota
	AwaitingExtraction
	PendingReview
	Acknowledged
	Rejected
	ExtractionFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:      "unknown",
		AwaitingExtraction: "awaiting_extraction",
		PendingReview:      "pending_review",
		Acknowledged:       "acknowledged",
		Rejected:           "rejected",
		ExtractionFailed:   "extraction_failed",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if s <= UnknownStatus || s > ExtractionFailed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Acknowledged || s == Rejected || s == ExtractionFailed
}

// Stage moves AwaitingExtraction to PendingReview.
func (s Status) Stage() (Status, error) {
	if s != AwaitingExtraction {
		return UnknownStatus, invalidTransition(s, "stage")
	}
	return PendingReview, nil
}

// Fail moves AwaitingExtraction to ExtractionFailed.
func (s Status) Fail() (Status, error) {
	if s != AwaitingExtraction {
		return UnknownStatus, invalidTransition(s, "fail")
	}
	return ExtractionFailed, nil
}

// Acknowledge moves PendingReview to Acknowledged.
func (s Status) Acknowledge() (Status, error) {
	if s != PendingReview {
		return UnknownStatus, invalidTransition(s, "acknowledge")
	}
	return Acknowledged, nil
}

// Reject moves PendingReview to Rejected.
func (s Status) Reject() (Status, error) {
	if s != PendingReview {
		return UnknownStatus, invalidTransition(s, "reject")
	}
	return Rejected, nil
}

func invalidTransition(s Status, verb string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), verb),
	)
}
