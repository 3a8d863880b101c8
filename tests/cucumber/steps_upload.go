//go:build cucumber
// +build cucumber

package cucumber

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"quizdeck/internal/api"
	"quizdeck/internal/upload"
)

// scriptedBackend plays back a fixed sequence of progress statuses.
type scriptedBackend struct {
	script    []string
	expired   bool
	endless   bool
	immediate bool
	polls     atomic.Int64
}

func (b *scriptedBackend) UploadFile(ctx context.Context, req api.UploadRequest) (api.UploadResponse, error) {
	if b.immediate {
		return api.UploadResponse{Imported: 12, Message: "Imported 12 questions", Immediate: true}, nil
	}
	return api.UploadResponse{SessionID: "sess-1"}, nil
}

func (b *scriptedBackend) UploadProgress(ctx context.Context, sessionID string) (api.Progress, error) {
	n := int(b.polls.Add(1))
	if b.expired {
		return api.Progress{}, api.ErrNotFound
	}
	if b.endless {
		return api.Progress{Status: "pending", Percent: 10, Message: "Generating questions"}, nil
	}
	if n > len(b.script) {
		return api.Progress{}, fmt.Errorf("poll %d past end of script", n)
	}
	switch b.script[n-1] {
	case "complete":
		return api.Progress{Status: api.StatusComplete, Percent: 100, Message: "Generated 12 questions"}, nil
	case "error":
		return api.Progress{Status: api.StatusError, Message: "generation blew up"}, nil
	default:
		return api.Progress{Status: "pending", Percent: float64(n * 10), Message: "Generating questions"}, nil
	}
}

// countingCache counts invalidations of the question-set cache.
type countingCache struct {
	invalidations atomic.Int64
}

func (c *countingCache) Invalidate() {
	c.invalidations.Add(1)
}

func (s *featureState) aBackendReporting(script string) error {
	s.backend = &scriptedBackend{script: strings.Split(script, ",")}
	return nil
}

func (s *featureState) aBackendWithExpiredSession() error {
	s.backend = &scriptedBackend{expired: true}
	return nil
}

func (s *featureState) aBackendThatNeverFinishes() error {
	s.backend = &scriptedBackend{endless: true}
	return nil
}

func (s *featureState) aBackendWithImmediateImport() error {
	s.backend = &scriptedBackend{immediate: true}
	return nil
}

func (s *featureState) theTrackerPollsAtMost(n int) error {
	s.maxPolls = n
	return nil
}

// iUploadAFile starts a tracked upload and drains it to its terminal
// event, waiting for any settle-delayed cache invalidation to land.
func (s *featureState) iUploadAFile() error {
	if s.backend == nil {
		return fmt.Errorf("no backend configured")
	}
	tracker := upload.New(s.backend, s.cache, upload.Options{
		Interval: time.Millisecond,
		Settle:   time.Millisecond,
		MaxPolls: s.maxPolls,
	})
	handle, immediate, err := tracker.Start(context.Background(), api.UploadRequest{
		Reader:   strings.NewReader("fixture"),
		Filename: "lecture.pdf",
		SetName:  "Lecture",
	})
	if err != nil {
		return fmt.Errorf("start upload: %w", err)
	}
	if immediate != nil {
		s.immediate = true
		return nil
	}
	for event := range handle.Events() {
		s.finalEvent = event
	}
	select {
	case <-handle.Done():
	case <-time.After(5 * time.Second):
		return fmt.Errorf("tracker did not finish")
	}
	return nil
}

func (s *featureState) theTrackerMakesExactlyPolls(n int) error {
	if got := int(s.backend.polls.Load()); got != n {
		return fmt.Errorf("expected %d polls, got %d", n, got)
	}
	return nil
}

func (s *featureState) theUploadFinishesSuccessfully() error {
	if s.immediate {
		return nil
	}
	if s.finalEvent.Kind != upload.EventDone {
		return fmt.Errorf("expected a successful terminal event, got %+v", s.finalEvent)
	}
	return nil
}

func (s *featureState) theUploadFailsWith(message string) error {
	if s.finalEvent.Kind != upload.EventFailed {
		return fmt.Errorf("expected a failing terminal event, got %+v", s.finalEvent)
	}
	if !strings.Contains(s.finalEvent.Message, message) {
		return fmt.Errorf("expected failure %q, got %q", message, s.finalEvent.Message)
	}
	return nil
}

func (s *featureState) theCacheIsInvalidatedOnce() error {
	if got := s.cache.invalidations.Load(); got != 1 {
		return fmt.Errorf("expected 1 invalidation, got %d", got)
	}
	return nil
}

func (s *featureState) theCacheIsNotInvalidated() error {
	if got := s.cache.invalidations.Load(); got != 0 {
		return fmt.Errorf("expected no invalidations, got %d", got)
	}
	return nil
}
