package service

import (
	"context"
	"errors"
	"sync"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/session"
)

// liveView keeps a view subscribed to session changes and tracks the
// refreshes it starts in the background
type liveView struct {
	mu          sync.Mutex
	closed      bool
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
}

func newLiveView(notifier *session.Notifier, onChange session.Handler) *liveView {
	ctx, cancel := context.WithCancel(context.Background())
	v := &liveView{ctx: ctx, cancel: cancel, unsubscribe: func() {}}
	if notifier != nil {
		v.unsubscribe = notifier.Subscribe(onChange)
	}
	return v
}

// refresh runs fn in the background with the view's context. It does
// nothing once the view is closed.
func (v *liveView) refresh(fn func(ctx context.Context)) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.wg.Add(1)
	v.mu.Unlock()

	go func() {
		defer v.wg.Done()
		fn(v.ctx)
	}()
}

// Wait blocks until every background refresh has finished
func (v *liveView) Wait() {
	v.wg.Wait()
}

// Close unsubscribes the view and cancels in-flight refreshes
func (v *liveView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()

	v.unsubscribe()
	v.cancel()
	v.wg.Wait()
}

// cachedUser reads the session user, mapping "absent" to a nil user
func cachedUser(ctx context.Context, cache *session.Cache) (models.UserRecord, error) {
	user, err := cache.Get(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return nil, nil
	}
	return user, err
}
