package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// StubNotifier backs the sms and push channels: it records the message in
// the log and reports success.
type StubNotifier struct {
	channel string
}

func NewStubNotifier(channel string) *StubNotifier {
	return &StubNotifier{channel: channel}
}

func (n *StubNotifier) Send(ctx context.Context, msg Message) (Result, error) {
	log.Info().
		Str("channel", n.channel).
		Str("recipient", msg.Recipient).
		Str("subject", msg.Subject).
		Msg("notification stub delivery")
	return Result{MessageID: uuid.NewString()}, nil
}
