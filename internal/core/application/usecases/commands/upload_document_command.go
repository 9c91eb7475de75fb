package commands

import (
	"errors"
	"path"
	"strings"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
	"doctrack/internal/pkg/guard"
)

const maxDocumentSize = 20 << 20

var ErrUploadDocumentCommandIsNotConstructed = errors.New(
	"UploadDocumentCommand must be created via NewUploadDocumentCommand constructor",
)

// UploadDocumentCommand carries an uploaded file into the ingestion
// pipeline. The type is a hint and may be document.UnknownType.
type UploadDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID  kernel.UUID
	docType     document.Type
	filename    string
	contentType string
	content     []byte

	guard guard.ConstructorGuard
}

func NewUploadDocumentCommand(
	documentID kernel.UUID,
	docType document.Type,
	filename string,
	contentType string,
	content []byte,
) (UploadDocumentCommand, error) {
	cmd := UploadDocumentCommand{
		docType:     docType,
		contentType: strings.TrimSpace(contentType),
		content:     content,
		guard:       guard.NewConstructorGuard(),
	}
	if cmd.contentType == "" {
		cmd.contentType = "application/octet-stream"
	}

	var typeErr error
	if docType != document.UnknownType {
		typeErr = docType.Validate()
	}

	if err := errors.Join(
		documentID.Validate(),
		typeErr,
		cmd.setFilename(filename),
		cmd.validateContent(),
	); err != nil {
		return UploadDocumentCommand{}, err
	}
	cmd.documentID = documentID

	return cmd, nil
}

func (c UploadDocumentCommand) Validate() error {
	return c.guard.Validate(ErrUploadDocumentCommandIsNotConstructed)
}

func (c UploadDocumentCommand) DocumentID() kernel.UUID { return c.documentID }
func (c UploadDocumentCommand) Type() document.Type     { return c.docType }
func (c UploadDocumentCommand) Filename() string        { return c.filename }
func (c UploadDocumentCommand) ContentType() string     { return c.contentType }
func (c UploadDocumentCommand) Content() []byte         { return c.content }

// FileKey is the file store key the upload is kept under.
func (c UploadDocumentCommand) FileKey() string {
	return "documents/" + c.documentID.String() + "/" + c.filename
}

func (c *UploadDocumentCommand) setFilename(name string) error {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return errs.NewValueIsRequiredError("filename")
	}
	c.filename = name
	return nil
}

func (c *UploadDocumentCommand) validateContent() error {
	if len(c.content) == 0 {
		return errs.NewValueIsRequiredError("file content")
	}
	if len(c.content) > maxDocumentSize {
		return errs.NewValueIsOutOfRangeError("file size", len(c.content), 1, maxDocumentSize)
	}
	return nil
}
