package mailer

// Message is one outbound mail.
type Message struct {
	Recipient string
	Subject   string
	Body      string
	IsHTML    bool
}

// Mailer delivers a single message. Implementations should not retry;
// the caller logs failures and moves on.
type Mailer interface {
	Send(msg Message) error
}
