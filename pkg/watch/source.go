package watch

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"
)

// Change is a reload as delivered by a Source: numbered in arrival order and
// summarized with the folder and note counts of the reloaded tree.
type Change struct {
	Event
	Seq     uint64
	Folders int
	Notes   int
}

// String implements lifecycle.Event.
func (c Change) String() string {
	return fmt.Sprintf("#%d %s (%d folders, %d notes)", c.Seq, c.Event, c.Folders, c.Notes)
}

type source struct {
	events <-chan Event
	out    chan lifecycle.Event
	seq    uint64
}

// NewSource exposes reload events as a lifecycle.Source emitting Change
// values. Events without a vault are dropped.
func NewSource(events <-chan Event) lifecycle.Source {
	return &source{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *source) Events() <-chan lifecycle.Event {
	return s.out
}

// annotate turns a reload into a Change, reporting false for events that
// carry no vault.
func (s *source) annotate(e Event) (Change, bool) {
	if e.Vault == nil {
		return Change{}, false
	}
	s.seq++
	folders, notes := e.Vault.Count()
	return Change{Event: e, Seq: s.seq, Folders: folders, Notes: notes}, true
}

func (s *source) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			var e Event
			var ok bool
			select {
			case <-ctx.Done():
				return nil
			case e, ok = <-s.events:
				if !ok {
					return nil
				}
			}

			change, keep := s.annotate(e)
			if !keep {
				continue
			}
			select {
			case s.out <- change:
			case <-ctx.Done():
				return nil
			}
		}
	})
	return nil
}
