package memory

import (
	"context"
	"time"

	"github.com/riskibarqy/football-scouting/internal/domain/report"
	"github.com/riskibarqy/football-scouting/internal/domain/session"
	"github.com/riskibarqy/football-scouting/internal/platform/cache"
)

// SessionRepository keeps sessions in a TTL store. Sessions are lost on
// restart.
type SessionRepository struct {
	store *cache.Store[session.Session]
	now   func() time.Time
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{store: cache.NewStore[session.Session](ttl), now: time.Now}
}

func (r *SessionRepository) Get(ctx context.Context, id string) (session.Session, bool, error) {
	s, ok := r.store.Get(ctx, id)
	if !ok {
		return session.Session{}, false, nil
	}
	if s.Expired(r.now()) {
		r.store.Delete(ctx, id)
		return session.Session{}, false, nil
	}
	return cloneSession(s), true, nil
}

func (r *SessionRepository) Save(ctx context.Context, s session.Session) error {
	r.store.Set(ctx, s.ID, cloneSession(s))
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.store.Delete(ctx, id)
	return nil
}

func cloneSession(s session.Session) session.Session {
	copied := s
	copied.Drafts = append([]report.MatchReport(nil), s.Drafts...)
	return copied
}
