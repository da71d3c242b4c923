package session

import (
	"context"
	"time"

	"github.com/riskibarqy/football-scouting/internal/domain/report"
)

type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

func ParseLanguage(raw string) (Language, bool) {
	switch Language(raw) {
	case LanguageES, LanguageEN:
		return Language(raw), true
	}
	return "", false
}

// Session is the per-scout dashboard state: the page being viewed, the
// display language and match reports drafted but not yet submitted.
type Session struct {
	ID        string               `json:"-"`
	Scout     string               `json:"scout"`
	Language  Language             `json:"language"`
	Page      string               `json:"page"`
	Drafts    []report.MatchReport `json:"drafts"`
	CreatedAt time.Time            `json:"createdAt"`
	ExpiresAt time.Time            `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Repository stores sessions by id.
type Repository interface {
	Get(ctx context.Context, id string) (Session, bool, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
}
