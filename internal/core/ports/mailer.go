package ports

import "context"

// Attachment is a file sent along with a mail.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is an outbound plain text mail.
type Message struct {
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer delivers outbound mail.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
