package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/riskibarqy/football-scouting/internal/domain/report"
	"github.com/riskibarqy/football-scouting/internal/domain/session"
	idgen "github.com/riskibarqy/football-scouting/internal/platform/id"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

const DefaultPage = "home"

// Credentials maps scout names to bcrypt password hashes.
type Credentials map[string]string

// ParseCredentials reads "name:hash,name:hash". Hashes contain '$' but
// never ',' or ':' so the format needs no escaping.
func ParseCredentials(raw string) (Credentials, error) {
	out := make(Credentials)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, hash, ok := strings.Cut(part, ":")
		name, hash = strings.TrimSpace(name), strings.TrimSpace(hash)
		if !ok || name == "" || hash == "" {
			return nil, fmt.Errorf("invalid credential entry %q", part)
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("credential for %s is not a bcrypt hash: %w", name, err)
		}
		out[name] = hash
	}
	return out, nil
}

// PreferencesInput carries the optional preference changes; nil is unchanged.
type PreferencesInput struct {
	Language *session.Language
	Page     *string
}

type SessionService struct {
	repo        session.Repository
	reports     *ReportService
	credentials Credentials
	idGen       idgen.Generator
	ttl         time.Duration
	logger      *logging.Logger
	now         func() time.Time

	// serializes read-modify-write of a session
	mu sync.Mutex
}

func NewSessionService(
	repo session.Repository,
	reports *ReportService,
	credentials Credentials,
	idGen idgen.Generator,
	ttl time.Duration,
	logger *logging.Logger,
) *SessionService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = idgen.NewRandomGenerator()
	}

	return &SessionService{
		repo:        repo,
		reports:     reports,
		credentials: credentials,
		idGen:       idGen,
		ttl:         ttl,
		logger:      logger,
		now:         time.Now,
	}
}

// unknownScoutHash keeps the cost of a failed login the same whether or not
// the scout exists.
var unknownScoutHash, _ = bcrypt.GenerateFromPassword([]byte("unknown-scout"), bcrypt.MinCost)

func (s *SessionService) Login(ctx context.Context, scout, password string) (session.Session, error) {
	ctx, span := startSpan(ctx, "usecase.SessionService.Login")
	defer span.End()

	scout = strings.TrimSpace(scout)
	if scout == "" || password == "" {
		return session.Session{}, fmt.Errorf("%w: scout and password are required", ErrInvalidInput)
	}

	name, hash, ok := s.lookup(scout)
	if !ok {
		_ = bcrypt.CompareHashAndPassword(unknownScoutHash, []byte(password))
		s.logger.WarnContext(ctx, "login rejected", "scout", scout, "reason", "unknown scout")
		return session.Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.logger.WarnContext(ctx, "login rejected", "scout", name, "reason", "password mismatch")
		return session.Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return session.Session{}, fmt.Errorf("generate session id: %w", err)
	}
	now := s.now().UTC()
	sess := session.Session{
		ID:        id,
		Scout:     name,
		Language:  session.LanguageES,
		Page:      DefaultPage,
		CreatedAt: now,
	}
	if s.ttl > 0 {
		sess.ExpiresAt = now.Add(s.ttl)
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		return session.Session{}, fmt.Errorf("save session: %w", err)
	}
	s.logger.InfoContext(ctx, "scout logged in", "scout", name)
	return sess, nil
}

func (s *SessionService) lookup(scout string) (string, string, bool) {
	if hash, ok := s.credentials[scout]; ok {
		return scout, hash, true
	}
	for name, hash := range s.credentials {
		if strings.EqualFold(name, scout) {
			return name, hash, true
		}
	}
	return "", "", false
}

// Get returns a live session. Unknown and expired ids are unauthorized.
func (s *SessionService) Get(ctx context.Context, id string) (session.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return session.Session{}, fmt.Errorf("%w: missing session", ErrUnauthorized)
	}
	sess, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return session.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !ok || sess.Expired(s.now()) {
		return session.Session{}, fmt.Errorf("%w: session expired or unknown", ErrUnauthorized)
	}
	return sess, nil
}

// Logout discards the session with its preferences and drafts.
func (s *SessionService) Logout(ctx context.Context, id string) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.logger.InfoContext(ctx, "scout logged out", "scout", sess.Scout, "discarded_drafts", len(sess.Drafts))
	return nil
}

func (s *SessionService) UpdatePreferences(ctx context.Context, id string, input PreferencesInput) (session.Session, error) {
	return s.mutate(ctx, id, func(sess *session.Session) error {
		if input.Language != nil {
			lang, ok := session.ParseLanguage(string(*input.Language))
			if !ok {
				return fmt.Errorf("%w: language must be es or en", ErrInvalidInput)
			}
			sess.Language = lang
		}
		if input.Page != nil {
			page := strings.TrimSpace(*input.Page)
			if page == "" {
				page = DefaultPage
			}
			sess.Page = page
		}
		return nil
	})
}

// AddDraft validates r and keeps it on the session until submitted. The
// scout defaults to the session owner.
func (s *SessionService) AddDraft(ctx context.Context, id string, r report.MatchReport) (session.Session, error) {
	return s.mutate(ctx, id, func(sess *session.Session) error {
		if strings.TrimSpace(r.Scout) == "" {
			r.Scout = sess.Scout
		}
		if err := r.Validate(); err != nil {
			return invalidReport(err, 0, 1)
		}
		sess.Drafts = append(sess.Drafts, r.Normalize())
		return nil
	})
}

func (s *SessionService) ListDrafts(ctx context.Context, id string) ([]report.MatchReport, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return append([]report.MatchReport{}, sess.Drafts...), nil
}

// SubmitDrafts appends every draft in one write and clears them. Nothing is
// written when any draft fails validation.
func (s *SessionService) SubmitDrafts(ctx context.Context, id string) ([]report.MatchReport, error) {
	ctx, span := startSpan(ctx, "usecase.SessionService.SubmitDrafts")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(sess.Drafts) == 0 {
		return nil, fmt.Errorf("%w: no drafts to submit", ErrInvalidInput)
	}

	submitted, err := s.reports.SubmitMatchReports(ctx, sess.Drafts)
	if err != nil {
		return nil, err
	}

	sess.Drafts = nil
	if err := s.repo.Save(ctx, sess); err != nil {
		// the reports are stored; only the draft list is stale
		s.logger.ErrorContext(ctx, "clear submitted drafts failed", "scout", sess.Scout, "error", err)
	}
	return submitted, nil
}

func (s *SessionService) ClearDrafts(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, id, func(sess *session.Session) error {
		sess.Drafts = nil
		return nil
	})
	return err
}

func (s *SessionService) mutate(ctx context.Context, id string, fn func(*session.Session) error) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return session.Session{}, err
	}
	if err := fn(&sess); err != nil {
		return session.Session{}, err
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		return session.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}
