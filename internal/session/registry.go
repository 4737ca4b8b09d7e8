package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chocozoo/storefront/pkg/logger"
)

const defaultIdleTTL = 2 * time.Hour

// Recorder receives session and cart activity. *metrics.Storefront satisfies it.
type Recorder interface {
	IncCartMutation(op string)
	SetActiveSessions(n int)
}

// Params configure the registry.
type Params struct {
	Logger   *logger.Logger
	Recorder Recorder
	IdleTTL  time.Duration
	Now      func() time.Time
}

// Registry owns every live session, keyed by session id.
type Registry struct {
	logg     *logger.Logger
	recorder Recorder
	idleTTL  time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(params Params) *Registry {
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	ttl := params.IdleTTL
	if ttl <= 0 {
		ttl = defaultIdleTTL
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Registry{
		logg:     logg,
		recorder: params.Recorder,
		idleTTL:  ttl,
		now:      now,
		sessions: make(map[string]*Session),
	}
}

// Resolve returns the session for id, creating one when id is unknown. A
// well-formed id that is not registered (expired, or issued before a
// restart) is reused for the new session; anything else gets a fresh id.
func (r *Registry) Resolve(id string) (*Session, bool) {
	now := r.now()

	r.mu.Lock()
	if s, ok := r.sessions[id]; ok {
		r.mu.Unlock()
		s.touch(now)
		return s, false
	}
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	s := newSession(id, now, r.recorder)
	r.sessions[id] = s
	count := len(r.sessions)
	r.mu.Unlock()

	r.reportCount(count)
	return s, true
}

// Get returns a live session without creating one.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if ok {
		s.touch(r.now())
	}
	return s, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep(ctx context.Context) int {
	now := r.now()

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.idleSince(now) > r.idleTTL {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	count := len(r.sessions)
	r.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	if len(expired) > 0 {
		r.logg.Info(r.logg.WithFields(ctx, map[string]any{
			"expired": len(expired),
			"active":  count,
		}), "session.sweep")
	}
	r.reportCount(count)
	return len(expired)
}

// Run sweeps on a fixed cadence until ctx is canceled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = r.idleTTL
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logg.Info(ctx, "session sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

func (r *Registry) reportCount(n int) {
	if r.recorder == nil {
		return
	}
	r.recorder.SetActiveSessions(n)
}
