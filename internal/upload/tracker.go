// Package upload tracks asynchronous question generation: it submits a
// file, then polls the backend's progress endpoint until the job
// finishes, fails, or a local poll cap trips.
package upload

import (
	"context"
	"errors"
	"sync"
	"time"

	"quizdeck/internal/api"
)

// ErrTimeout marks the client-side poll cap. It is a local circuit
// breaker against a stuck backend job, not a server contract.
var ErrTimeout = errors.New("upload timed out")

// ErrSessionNotFound marks a poll that hit a missing or expired session.
var ErrSessionNotFound = errors.New("Upload session not found or expired")

// Backend is the slice of the API the tracker consumes.
type Backend interface {
	UploadFile(ctx context.Context, req api.UploadRequest) (api.UploadResponse, error)
	UploadProgress(ctx context.Context, sessionID string) (api.Progress, error)
}

// Invalidator drops a cached question-set list so it is refetched.
type Invalidator interface {
	Invalidate()
}

// EventKind classifies tracker events.
type EventKind int

const (
	// EventProgress is a non-terminal status update.
	EventProgress EventKind = iota
	// EventDone is the successful terminal event.
	EventDone
	// EventFailed is the failing terminal event.
	EventFailed
)

// Event is one update delivered while a session is tracked.
type Event struct {
	Kind    EventKind
	Percent float64
	Message string
	Err     error
}

// Options tunes the tracker's timing.
type Options struct {
	// Interval between polls. Defaults to one second.
	Interval time.Duration
	// Settle is the wait before invalidating the set cache after a
	// completed job, tolerating backend store lag. Defaults to 500ms.
	Settle time.Duration
	// MaxPolls caps poll attempts. Defaults to 120 (about two minutes).
	MaxPolls int
}

const (
	defaultInterval = time.Second
	defaultSettle   = 500 * time.Millisecond
	defaultMaxPolls = 120
)

// Tracker submits uploads and supervises their progress sessions.
type Tracker struct {
	backend  Backend
	cache    Invalidator
	interval time.Duration
	settle   time.Duration
	maxPolls int
}

// New constructs a tracker. Zero option fields take defaults.
func New(backend Backend, cache Invalidator, opts Options) *Tracker {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Settle <= 0 {
		opts.Settle = defaultSettle
	}
	if opts.MaxPolls <= 0 {
		opts.MaxPolls = defaultMaxPolls
	}
	return &Tracker{
		backend:  backend,
		cache:    cache,
		interval: opts.Interval,
		settle:   opts.Settle,
		maxPolls: opts.MaxPolls,
	}
}

// Handle supervises one polling session. Stop is idempotent and halts
// the loop deterministically; the event channel closes when the loop
// exits, so no timer or goroutine outlives the session.
type Handle struct {
	events   chan Event
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// Events streams progress and exactly one terminal event.
func (h *Handle) Events() <-chan Event {
	return h.events
}

// Stop cancels polling. Safe to call any number of times, including
// after the session already reached a terminal state.
func (h *Handle) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
}

// Done closes once the poll loop has fully exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Start submits the upload. Structured imports finish immediately: the
// cache is invalidated and the response returned with no polling. For
// generation jobs a Handle is returned and polling begins.
func (t *Tracker) Start(ctx context.Context, req api.UploadRequest) (*Handle, *api.UploadResponse, error) {
	resp, err := t.backend.UploadFile(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if resp.Immediate {
		t.cache.Invalidate()
		return nil, &resp, nil
	}
	handle := &Handle{
		events: make(chan Event),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	go t.run(ctx, resp.SessionID, handle)
	return handle, nil, nil
}

// run drives the poll loop. The next timer is armed only after the
// previous poll settles, so polls for one session never overlap.
func (t *Tracker) run(ctx context.Context, sessionID string, h *Handle) {
	defer close(h.done)
	defer close(h.events)

	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for polls := 0; ; {
		select {
		case <-ctx.Done():
			return
		case <-h.stopCh:
			return
		case <-timer.C:
		}

		if polls >= t.maxPolls {
			h.deliver(ctx, Event{Kind: EventFailed, Message: ErrTimeout.Error(), Err: ErrTimeout})
			return
		}
		polls++

		progress, err := t.backend.UploadProgress(ctx, sessionID)
		if err != nil {
			if errors.Is(err, api.ErrNotFound) {
				h.deliver(ctx, Event{Kind: EventFailed, Message: ErrSessionNotFound.Error(), Err: ErrSessionNotFound})
				return
			}
			h.deliver(ctx, Event{Kind: EventFailed, Message: err.Error(), Err: err})
			return
		}

		switch progress.Status {
		case api.StatusComplete:
			h.deliver(ctx, Event{Kind: EventDone, Percent: 100, Message: progress.Message})
			t.settleInvalidate(ctx, h)
			return
		case api.StatusError:
			err := errors.New(progress.Message)
			if progress.Message == "" {
				err = errors.New("upload failed")
			}
			h.deliver(ctx, Event{Kind: EventFailed, Message: err.Error(), Err: err})
			return
		default:
			h.deliver(ctx, Event{Kind: EventProgress, Percent: progress.Percent, Message: progress.Message})
			timer.Reset(t.interval)
		}
	}
}

// settleInvalidate waits out backend store lag, then invalidates the
// set cache exactly once. Stopping the handle after completion does not
// skip the invalidation; the upload did finish.
func (t *Tracker) settleInvalidate(ctx context.Context, h *Handle) {
	timer := time.NewTimer(t.settle)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	t.cache.Invalidate()
}

// deliver hands an event to the consumer unless the session is being
// torn down.
func (h *Handle) deliver(ctx context.Context, event Event) {
	select {
	case h.events <- event:
	case <-h.stopCh:
	case <-ctx.Done():
	}
}
