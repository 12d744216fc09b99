package store

import (
	"sync"

	"github.com/rs/zerolog"
)

// dispatcher fans change events out to subscribers through a buffered queue
// so a save never waits on a consumer.
type dispatcher struct {
	queue chan Change
	log   zerolog.Logger

	mu   sync.Mutex
	subs []chan Change
	done bool
}

func newDispatcher(log zerolog.Logger) *dispatcher {
	d := &dispatcher{
		queue: make(chan Change, 100),
		log:   log,
	}

	go d.worker()
	return d
}

func (d *dispatcher) worker() {
	for ev := range d.queue {
		d.mu.Lock()
		subs := make([]chan Change, len(d.subs))
		copy(subs, d.subs)
		d.mu.Unlock()

		for _, sub := range subs {
			select {
			case sub <- ev:
			default:
				// subscriber not draining, drop rather than stall
			}
		}
	}

	d.mu.Lock()
	for _, sub := range d.subs {
		close(sub)
	}
	d.subs = nil
	d.mu.Unlock()
}

func (d *dispatcher) dispatch(ev Change) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Msg("session change queue full, dropping event")
	}
}

func (d *dispatcher) subscribe() <-chan Change {
	ch := make(chan Change, 8)

	d.mu.Lock()
	if d.done {
		close(ch)
	} else {
		d.subs = append(d.subs, ch)
	}
	d.mu.Unlock()

	return ch
}

func (d *dispatcher) close() {
	d.mu.Lock()
	if d.done {
		d.mu.Unlock()
		return
	}
	d.done = true
	d.mu.Unlock()

	close(d.queue)
}
