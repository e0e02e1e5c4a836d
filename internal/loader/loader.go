// Package loader runs the builder shell's load step as an explicit,
// restartable operation.
package loader

import (
	"context"
	"sync"

	"github.com/a-h/templ"
)

// Result is a loaded component or the reason loading failed.
type Result struct {
	Component templ.Component
	Err       error
}

type Func func(ctx context.Context) (templ.Component, error)

// Loader runs Func. Each Load supersedes the previous one: the previous
// attempt's context is cancelled and its channel is closed without a result.
type Loader struct {
	load Func

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func New(load Func) *Loader {
	return &Loader{load: load}
}

// Load starts an attempt. The channel yields exactly one Result, or is closed
// empty if a later Load superseded this one.
func (l *Loader) Load(ctx context.Context) <-chan Result {
	attemptCtx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.mu.Unlock()

	out := make(chan Result, 1)
	go func() {
		defer close(out)

		component, err := l.load(attemptCtx)

		l.mu.Lock()
		current := l.gen == gen
		if current {
			l.cancel = nil
		}
		l.mu.Unlock()
		cancel()

		if !current {
			return
		}
		if err == nil && component == nil {
			component = templ.NopComponent
		}
		out <- Result{Component: component, Err: err}
	}()
	return out
}

// Cancel abandons the in-flight attempt, if any.
func (l *Loader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}
