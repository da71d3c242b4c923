package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-scouting/internal/platform/logging"
	"github.com/riskibarqy/football-scouting/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	sessionService       *usecase.SessionService
	teamService          *usecase.TeamService
	squadService         *usecase.SquadService
	playerService        *usecase.PlayerService
	reportService        *usecase.ReportService
	championshipService  *usecase.ChampionshipService
	externalSquadService *usecase.ExternalSquadService
	logger               *logging.Logger
	validator            *validator.Validate
}

func NewHandler(
	sessionService *usecase.SessionService,
	teamService *usecase.TeamService,
	squadService *usecase.SquadService,
	playerService *usecase.PlayerService,
	reportService *usecase.ReportService,
	championshipService *usecase.ChampionshipService,
	externalSquadService *usecase.ExternalSquadService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		sessionService:       sessionService,
		teamService:          teamService,
		squadService:         squadService,
		playerService:        playerService,
		reportService:        reportService,
		championshipService:  championshipService,
		externalSquadService: externalSquadService,
		logger:               logger,
		validator:            validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into target and runs struct validation.
func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, target)
}

// currentSession is only called behind RequireAuth.
func currentSession(ctx context.Context) (string, string, error) {
	sess, ok := sessionFromContext(ctx)
	if !ok {
		return "", "", fmt.Errorf("%w: session is missing from request context", usecase.ErrUnauthorized)
	}
	return sess.ID, sess.Scout, nil
}
