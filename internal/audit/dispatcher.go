package audit

import "github.com/rs/zerolog/log"

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Sink is where dispatched events end up. The gorm-backed Logger is the
// production implementation.
type Sink interface {
	Log(action, entity, entityID string, metadata any) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
	done  chan struct{}
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink: sink,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue drops the event, never the request
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
