// Package loader guards picker navigation: it runs aggregations for the
// most recent navigation only and drops results that arrive for a
// navigation the user has already left.
package loader

import (
	"context"
	"sync"

	"github.com/openlearn/coach/internal/content"
)

// State is the picker page state applied after each navigation settles.
type State struct {
	Loading bool
	Tree    content.Tree
	Err     error
}

// Loader serializes state transitions for one picker page. Navigate may
// be called from any goroutine; the apply function always observes
// transitions in navigation order and never sees a superseded result.
type Loader struct {
	agg   *content.Aggregator
	apply func(State)

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func New(agg *content.Aggregator, apply func(State)) *Loader {
	return &Loader{agg: agg, apply: apply}
}

// Navigate starts aggregating topicID, cancelling any navigation still
// in flight. The previous navigation's result, success or failure, is
// discarded on arrival.
func (l *Loader) Navigate(ctx context.Context, topicID string) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.apply(State{Loading: true})
	l.mu.Unlock()

	go func() {
		defer cancel()
		tree, err := l.agg.Aggregate(ctx, topicID)

		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.gen {
			// user navigated away; stale result
			return
		}
		if err != nil {
			l.apply(State{Err: err})
			return
		}
		l.apply(State{Tree: tree})
	}()
}

// Reset cancels any in-flight navigation without applying new state.
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}
