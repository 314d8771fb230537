// Package snapshot stores a live layout under a name, debounced.
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/logging"
)

const defaultInterval = 2 * time.Second

// Service saves the provider's layout a while after the last MarkDirty.
type Service struct {
	layouts  *usecase.ManageLayoutsUseCase
	provider port.LayoutSnapshotter
	name     string
	interval time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ctx     context.Context
	cancel  context.CancelFunc
	onSaved func(error)
}

// NewService creates an autosave for the layout stored as name.
func NewService(layouts *usecase.ManageLayoutsUseCase, provider port.LayoutSnapshotter, name string, interval time.Duration) *Service {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		layouts:  layouts,
		provider: provider,
		name:     name,
		interval: interval,
	}
}

// Start enables background saves. Saves stop when ctx is done.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().
		Str("name", s.name).
		Dur("interval", s.interval).
		Msg("layout autosave started")
}

// Stop cancels pending saves and writes the final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// OnSaved registers fn to receive the result of every background save.
// fn runs on the timer goroutine.
func (s *Service) OnSaved(fn func(error)) {
	s.mu.Lock()
	s.onSaved = fn
	s.mu.Unlock()
}

// MarkDirty schedules a save, pushing back one already scheduled.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, s.saveInBackground)
}

func (s *Service) saveInBackground() {
	s.mu.Lock()
	ctx := s.ctx
	onSaved := s.onSaved
	s.mu.Unlock()

	if ctx == nil || ctx.Err() != nil {
		return
	}

	err := s.save(ctx)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("name", s.name).Msg("failed to autosave layout")
	}
	if onSaved != nil {
		onSaved(err)
	}
}

// SaveNow saves immediately when there are unsaved changes.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}
	return s.save(ctx)
}

func (s *Service) save(ctx context.Context) error {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	doc := s.provider.Snapshot()
	if doc == nil {
		return nil
	}

	if _, err := s.layouts.Save(ctx, s.name, doc); err != nil {
		// Keep the change pending so Stop retries it.
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	return nil
}
