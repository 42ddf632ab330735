package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/agenciagand/orca/internal/model"
)

// Saver persists engine snapshots best-effort, off the mutation path.
// Snapshots are queued latest-wins and written by a single goroutine;
// a failed write is logged and dropped, never surfaced to the mutator.
//
// Observe must be called from the same goroutine that mutates the
// engine, and Close only after the last mutation.
type Saver struct {
	store   *Store
	pending chan model.BudgetState
	done    chan struct{}
}

// NewSaver starts the background writer for the given store.
func NewSaver(st *Store) *Saver {
	s := &Saver{
		store:   st,
		pending: make(chan model.BudgetState, 1),
		done:    make(chan struct{}),
	}
	go s.drain()
	return s
}

// Observe enqueues a snapshot for saving. When a save is already
// pending the older snapshot is discarded; only the newest state
// matters since every save is a full overwrite.
func (s *Saver) Observe(state model.BudgetState) {
	for {
		select {
		case s.pending <- state:
			return
		default:
		}
		select {
		case <-s.pending:
		default:
		}
	}
}

func (s *Saver) drain() {
	defer close(s.done)
	for state := range s.pending {
		if err := s.store.Save(state); err != nil {
			log.WithError(err).Warn("draft autosave failed")
		}
	}
}

// Close flushes the pending snapshot, if any, and stops the writer.
func (s *Saver) Close() {
	close(s.pending)
	<-s.done
}
