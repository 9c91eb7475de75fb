package document

import (
	"errors"
	"maps"
	"strings"
	"time"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
)

// ErrDocumentIsNotConstructed is returned for documents not built by
// NewDocument or Restore.
var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")

// Document is the aggregate root of the ingestion pipeline.
type Document struct {
	id            kernel.UUID
	docType       Type
	fileKey       string
	filename      string
	contentType   string
	reference     string
	status        Status
	extraction    Extraction
	corrections   map[string]string
	failureReason string
	reviewer      string
	reviewNote    string
	invoiceID     *kernel.UUID
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewDocument registers an uploaded file waiting for extraction. docType may
// be UnknownType when the uploader did not classify the file; the extraction
// engine then decides.
func NewDocument(
	id kernel.UUID,
	docType Type,
	fileKey string,
	filename string,
	contentType string,
	reference string,
	at time.Time,
) (*Document, error) {
	d := &Document{
		docType:       docType,
		contentType:   contentType,
		status:        AwaitingExtraction,
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setFileKey(fileKey),
		d.setFilename(filename),
		d.setReference(reference),
	); err != nil {
		return nil, err
	}

	if docType != UnknownType {
		if err := docType.Validate(); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

func (d *Document) ID() kernel.UUID                { return d.id }
func (d *Document) Type() Type                     { return d.docType }
func (d *Document) FileKey() string                { return d.fileKey }
func (d *Document) Filename() string               { return d.filename }
func (d *Document) ContentType() string            { return d.contentType }
func (d *Document) Reference() string              { return d.reference }
func (d *Document) Status() Status                 { return d.status }
func (d *Document) Extraction() Extraction         { return d.extraction }
func (d *Document) FailureReason() string          { return d.failureReason }
func (d *Document) Reviewer() string               { return d.reviewer }
func (d *Document) ReviewNote() string             { return d.reviewNote }
func (d *Document) InvoiceID() *kernel.UUID        { return d.invoiceID }
func (d *Document) CreatedAt() time.Time           { return d.createdAt }
func (d *Document) UpdatedAt() time.Time           { return d.updatedAt }
func (d *Document) Corrections() map[string]string { return maps.Clone(d.corrections) }

// Fields returns the extracted fields with any stored corrections applied.
func (d *Document) Fields() map[string]string {
	return d.extraction.Merge(d.corrections)
}

// Stage records the extraction result and moves the document to review. A
// detected type overrides the upload hint; the document must end up typed.
func (d *Document) Stage(detected Type, extraction Extraction, at time.Time) error {
	next, err := d.status.Stage()
	if err != nil {
		return err
	}

	docType := d.docType
	if detected != UnknownType {
		docType = detected
	}
	if err = docType.Validate(); err != nil {
		return err
	}

	d.docType = docType
	d.extraction = extraction
	d.status = next
	d.updatedAt = at
	return nil
}

// Fail marks extraction as failed with a reason.
func (d *Document) Fail(reason string, at time.Time) error {
	next, err := d.status.Fail()
	if err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "extraction failed"
	}

	d.failureReason = reason
	d.status = next
	d.updatedAt = at
	return nil
}

// Acknowledge finalises review. The corrections become part of Fields and
// the document is linked to the invoice it populated.
func (d *Document) Acknowledge(reviewer string, invoiceID kernel.UUID, corrections map[string]string, at time.Time) error {
	next, err := d.status.Acknowledge()
	if err != nil {
		return err
	}

	reviewer = strings.TrimSpace(reviewer)
	if reviewer == "" {
		return errs.NewValueIsRequiredError("reviewer")
	}
	if err = invoiceID.Validate(); err != nil {
		return err
	}

	d.reviewer = reviewer
	d.corrections = cleanCorrections(corrections)
	d.invoiceID = &invoiceID
	d.status = next
	d.updatedAt = at
	return nil
}

// Reject discards the staged data. A note explaining the rejection is required.
func (d *Document) Reject(reviewer string, note string, at time.Time) error {
	next, err := d.status.Reject()
	if err != nil {
		return err
	}

	reviewer = strings.TrimSpace(reviewer)
	note = strings.TrimSpace(note)
	if err = errors.Join(requireText("reviewer", reviewer), requireText("review note", note)); err != nil {
		return err
	}

	d.reviewer = reviewer
	d.reviewNote = note
	d.status = next
	d.updatedAt = at
	return nil
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setFileKey(key string) error {
	key = strings.TrimSpace(key)
	if err := requireText("file key", key); err != nil {
		return err
	}
	d.fileKey = key
	return nil
}

func (d *Document) setFilename(name string) error {
	name = strings.TrimSpace(name)
	if err := requireText("filename", name); err != nil {
		return err
	}
	d.filename = name
	return nil
}

func (d *Document) setReference(ref string) error {
	ref = strings.TrimSpace(ref)
	if err := requireText("extraction reference", ref); err != nil {
		return err
	}
	d.reference = ref
	return nil
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func cleanCorrections(corrections map[string]string) map[string]string {
	if len(corrections) == 0 {
		return nil
	}
	cleaned := make(map[string]string, len(corrections))
	for k, v := range corrections {
		cleaned[normaliseKey(k)] = strings.TrimSpace(v)
	}
	return cleaned
}
