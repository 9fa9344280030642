package notification

import "context"

// Channel keys. Only email carries a real transport; sms and push are
// log-only placeholders until a provider is wired in.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPush  = "push"
)

type Message struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

type Result struct {
	MessageID string `json:"messageId"`
}

type Notifier interface {
	Send(ctx context.Context, msg Message) (Result, error)
}
