package notify

import (
	"fmt"
	"io"
	"os"
)

// EmailNotifier simulates email delivery by writing to an output stream.
// Its native surface is SendEmail; Notify adapts it to the domain port.
type EmailNotifier struct {
	out io.Writer
}

// NewEmail creates an EmailNotifier delivering to stdout.
func NewEmail() *EmailNotifier {
	return &EmailNotifier{out: os.Stdout}
}

// NewEmailTo delivers to w instead of stdout.
func NewEmailTo(w io.Writer) *EmailNotifier {
	return &EmailNotifier{out: w}
}

// SendEmail delivers a subject and body to an address.
func (n *EmailNotifier) SendEmail(to, subject, body string) error {
	if _, err := fmt.Fprintf(n.out, "EMAIL to %s | %s | %s\n", to, subject, body); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}
	return nil
}

// Notify satisfies domain.Notifier by delegating to SendEmail.
func (n *EmailNotifier) Notify(customer, message string) error {
	return n.SendEmail(customer, "Your invoice", message)
}
