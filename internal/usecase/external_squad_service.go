package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

// ExternalSquadService proxies the external squad provider. When the
// provider is not configured every call fails with ErrDependencyUnavailable
// and the rest of the service keeps working.
type ExternalSquadService struct {
	source ExternalSquadSource
	logger *logging.Logger
}

func NewExternalSquadService(source ExternalSquadSource, logger *logging.Logger) *ExternalSquadService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ExternalSquadService{source: source, logger: logger}
}

func (s *ExternalSquadService) TeamSquad(ctx context.Context, teamID int64) ([]ExternalSquadMember, error) {
	ctx, span := startSpan(ctx, "usecase.ExternalSquadService.TeamSquad")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	if s.source == nil {
		return nil, fmt.Errorf("%w: external squad provider is disabled", ErrDependencyUnavailable)
	}

	items, err := s.source.TeamSquad(ctx, teamID)
	if err != nil {
		s.logger.WarnContext(ctx, "external squad lookup failed", "team_id", teamID, "error", err)
		if errors.Is(err, ErrDependencyUnavailable) || errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}
	return items, nil
}
