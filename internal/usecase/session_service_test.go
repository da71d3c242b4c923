package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/riskibarqy/football-scouting/internal/domain/session"
	"github.com/riskibarqy/football-scouting/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func newTestSessionService(t *testing.T) (*SessionService, *memory.ReportRepository) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	reports := memory.NewReportRepository()
	service := NewSessionService(
		memory.NewSessionRepository(time.Hour),
		NewReportService(reports, logging.NewNop()),
		Credentials{"Ana": string(hash)},
		staticIDGenerator{id: "sess-1"},
		time.Hour,
		logging.NewNop(),
	)
	return service, reports
}

func TestParseCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("x"), bcrypt.MinCost)
	creds, err := ParseCredentials(" ana:" + string(hash) + ", ,luis:" + string(hash))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(creds) != 2 || creds["ana"] == "" || creds["luis"] == "" {
		t.Fatalf("unexpected credentials: %v", creds)
	}
	if _, err := ParseCredentials("ana:plaintext"); err == nil {
		t.Fatalf("expected plaintext password to be rejected")
	}
	if _, err := ParseCredentials("ana"); err == nil {
		t.Fatalf("expected entry without hash to be rejected")
	}
}

func TestSessionService_Login(t *testing.T) {
	service, _ := newTestSessionService(t)
	ctx := context.Background()

	if _, err := service.Login(ctx, "ana", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for bad password, got %v", err)
	}
	if _, err := service.Login(ctx, "nobody", "secret"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown scout, got %v", err)
	}

	sess, err := service.Login(ctx, "ana", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.ID != "sess-1" || sess.Scout != "Ana" || sess.Language != session.LanguageES || sess.Page != DefaultPage {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestSessionService_DraftLifecycle(t *testing.T) {
	service, reports := newTestSessionService(t)
	ctx := context.Background()
	sess, err := service.Login(ctx, "Ana", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	draft := validDraft("Pedri")
	draft.Scout = ""
	if _, err := service.AddDraft(ctx, sess.ID, draft); err != nil {
		t.Fatalf("add draft: %v", err)
	}
	bad := validDraft("Gavi")
	bad.Narrative = ""
	if _, err := service.AddDraft(ctx, sess.ID, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for incomplete draft, got %v", err)
	}

	drafts, err := service.ListDrafts(ctx, sess.ID)
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Scout != "Ana" {
		t.Fatalf("unexpected drafts: %+v", drafts)
	}

	submitted, err := service.SubmitDrafts(ctx, sess.ID)
	if err != nil {
		t.Fatalf("submit drafts: %v", err)
	}
	if len(submitted) != 1 {
		t.Fatalf("expected one submitted report, got %d", len(submitted))
	}
	stored, _ := reports.ListMatch(ctx)
	if len(stored) != 1 || stored[0].Player != "Pedri" {
		t.Fatalf("unexpected stored reports: %+v", stored)
	}
	if drafts, _ := service.ListDrafts(ctx, sess.ID); len(drafts) != 0 {
		t.Fatalf("drafts should be cleared after submit, got %d", len(drafts))
	}
	if _, err := service.SubmitDrafts(ctx, sess.ID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput with no drafts, got %v", err)
	}
}

func TestSessionService_PreferencesAndLogout(t *testing.T) {
	service, _ := newTestSessionService(t)
	ctx := context.Background()
	sess, _ := service.Login(ctx, "ana", "secret")

	en := session.LanguageEN
	page := "reports"
	got, err := service.UpdatePreferences(ctx, sess.ID, PreferencesInput{Language: &en, Page: &page})
	if err != nil {
		t.Fatalf("update preferences: %v", err)
	}
	if got.Language != session.LanguageEN || got.Page != "reports" {
		t.Fatalf("unexpected preferences: %+v", got)
	}

	fr := session.Language("fr")
	if _, err := service.UpdatePreferences(ctx, sess.ID, PreferencesInput{Language: &fr}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unsupported language, got %v", err)
	}

	if err := service.Logout(ctx, sess.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := service.Get(ctx, sess.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestSessionService_ExpiredSessionIsUnauthorized(t *testing.T) {
	service, _ := newTestSessionService(t)
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return start }
	sess, err := service.Login(ctx, "ana", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	service.now = func() time.Time { return start.Add(2 * time.Hour) }
	if _, err := service.Get(ctx, sess.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired session, got %v", err)
	}
}
