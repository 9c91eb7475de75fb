package ports

import "context"

// ExtractionRequest asks the AI extraction engine to read a document. The
// engine downloads the file from FileURL and posts its result to
// CallbackURL quoting Reference.
type ExtractionRequest struct {
	DocumentID   string
	Reference    string
	DocumentType string
	Filename     string
	FileURL      string
	CallbackURL  string
}

// ExtractionClient triggers the external extraction workflow.
type ExtractionClient interface {
	RequestExtraction(ctx context.Context, req ExtractionRequest) error
}
