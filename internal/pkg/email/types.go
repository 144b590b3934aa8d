package email

// Attachment is an inline file on an outgoing message.
type Attachment struct {
	Name        string
	Content     []byte
	ContentType string
}

// Message is the application-side shape of an email to send over SMTP.
type Message struct {
	From        string
	To          []string
	Subject     string
	Body        string
	HTMLBody    string
	Attachments []Attachment
}

// Sender sends email. Implemented by SMTPSender (gomail) and by the
// mock used in tests and local development.
type Sender interface {
	Send(msg *Message) error
}
