package notify

import (
	"fmt"
	"io"

	"github.com/billcraft/billcraft/internal/domain"
)

// For returns the notifier for a configured channel name, delivering to w.
// Swapping channels never requires changes to the billing service; both
// adapters satisfy domain.Notifier.
func For(channel string, w io.Writer) (domain.Notifier, error) {
	switch channel {
	case domain.ChannelEmail:
		return NewEmailTo(w), nil
	case domain.ChannelSMS:
		return NewSMSTo(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownChannel, channel)
	}
}
