package notify

import (
	"fmt"
	"io"
	"os"
)

// SMSNotifier simulates SMS delivery by writing to an output stream.
// Its native surface is SendSMS; Notify adapts it to the domain port.
type SMSNotifier struct {
	out io.Writer
}

// NewSMS creates an SMSNotifier delivering to stdout.
func NewSMS() *SMSNotifier {
	return &SMSNotifier{out: os.Stdout}
}

// NewSMSTo delivers to w instead of stdout.
func NewSMSTo(w io.Writer) *SMSNotifier {
	return &SMSNotifier{out: w}
}

// SendSMS delivers a short text to a recipient.
func (n *SMSNotifier) SendSMS(to, text string) error {
	if _, err := fmt.Fprintf(n.out, "SMS to %s | %s\n", to, text); err != nil {
		return fmt.Errorf("sending sms to %s: %w", to, err)
	}
	return nil
}

// Notify satisfies domain.Notifier by delegating to SendSMS.
func (n *SMSNotifier) Notify(customer, message string) error {
	return n.SendSMS(customer, message)
}
