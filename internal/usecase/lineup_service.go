package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-points/internal/domain/player"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
)

const maxLineupEntries = 30

type ValidateLineupInput struct {
	Formation string
	Entries   []fantasy.LineupEntry
}

type LineupService struct {
	players player.Repository
	logger  *logging.Logger
}

func NewLineupService(players player.Repository, logger *logging.Logger) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupService{
		players: players,
		logger:  logger,
	}
}

func (s *LineupService) ListFormations() []fantasy.Formation {
	return fantasy.Formations()
}

// Validate checks a lineup against a formation. Entries that carry only a
// player id get their position code from the player repository. An unknown
// formation is reported in the result, not as an error.
func (s *LineupService) Validate(ctx context.Context, input ValidateLineupInput) (fantasy.LineupCheck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Validate")
	defer span.End()

	formation := strings.TrimSpace(input.Formation)
	if formation == "" {
		return fantasy.LineupCheck{}, invalidInput("formation is required")
	}
	if len(input.Entries) == 0 {
		return fantasy.LineupCheck{}, invalidInput("lineup entries are required")
	}
	if len(input.Entries) > maxLineupEntries {
		return fantasy.LineupCheck{}, invalidInput("at most %d lineup entries are allowed", maxLineupEntries)
	}

	entries, err := s.resolvePositions(ctx, input.Entries)
	if err != nil {
		recordSpanError(span, err)
		return fantasy.LineupCheck{}, err
	}

	check := fantasy.CheckLineup(entries, formation)
	if len(check.UnknownPositions) > 0 {
		s.logger.WarnContext(ctx, "lineup has unknown position codes, defaulting role",
			"positions", check.UnknownPositions,
			"role", fantasy.DefaultRole,
		)
	}
	if !check.Valid {
		s.logger.DebugContext(ctx, "lineup rejected", "formation", formation, "reason", check.Err())
	}
	return check, nil
}

func (s *LineupService) resolvePositions(ctx context.Context, entries []fantasy.LineupEntry) ([]fantasy.LineupEntry, error) {
	out := make([]fantasy.LineupEntry, len(entries))
	copy(out, entries)

	var missing []string
	for i, entry := range out {
		if entry.Role.Valid() || strings.TrimSpace(entry.Position) != "" {
			continue
		}
		if strings.TrimSpace(entry.PlayerID) == "" {
			return nil, invalidInput("entry %d needs a player_id, position or role", i)
		}
		missing = append(missing, strings.TrimSpace(entry.PlayerID))
	}
	if len(missing) == 0 {
		return out, nil
	}
	if s.players == nil {
		return nil, invalidInput("positions are required when no player directory is configured")
	}

	players, err := s.players.GetByIDs(ctx, uniqueTrimmed(missing))
	if err != nil {
		return nil, wrapDependency(err, "get lineup players")
	}
	positions := make(map[string]string, len(players))
	for _, p := range players {
		positions[p.ID] = p.Position
	}

	var notFoundIDs []string
	for i, entry := range out {
		if entry.Role.Valid() || strings.TrimSpace(entry.Position) != "" {
			continue
		}
		position, ok := positions[strings.TrimSpace(entry.PlayerID)]
		if !ok {
			notFoundIDs = append(notFoundIDs, entry.PlayerID)
			continue
		}
		out[i].Position = position
	}
	if len(notFoundIDs) > 0 {
		return nil, notFound("players not found: %s", strings.Join(notFoundIDs, ","))
	}
	return out, nil
}
