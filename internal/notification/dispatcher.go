package notification

import (
	"context"

	"github.com/rs/zerolog/log"
)

type Delivery struct {
	Channel string
	Message Message
}

// Dispatcher fans deliveries out to the channel notifiers from a single
// worker goroutine. Sends are best-effort: a full queue drops the delivery
// and a failed send is logged, never surfaced to the caller.
type Dispatcher struct {
	notifiers map[string]Notifier
	queue     chan Delivery
	done      chan struct{}
}

func NewDispatcher(notifiers map[string]Notifier) *Dispatcher {
	d := &Dispatcher{
		notifiers: notifiers,
		queue:     make(chan Delivery, 100),
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for dv := range d.queue {
		n, ok := d.notifiers[dv.Channel]
		if !ok {
			log.Warn().Str("channel", dv.Channel).Msg("unknown notification channel")
			continue
		}

		res, err := n.Send(context.Background(), dv.Message)
		if err != nil {
			log.Error().
				Err(err).
				Str("channel", dv.Channel).
				Str("recipient", dv.Message.Recipient).
				Msg("notification send failed")
			continue
		}

		log.Debug().
			Str("channel", dv.Channel).
			Str("message_id", res.MessageID).
			Msg("notification sent")
	}
}

func (d *Dispatcher) Dispatch(dv Delivery) {
	select {
	case d.queue <- dv:
	default:
		log.Warn().
			Str("channel", dv.Channel).
			Str("recipient", dv.Message.Recipient).
			Msg("notification queue full, dropping delivery")
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
