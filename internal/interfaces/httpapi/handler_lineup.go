package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	items := h.lineupService.ListFormations()
	out := make([]formationDTO, 0, len(items))
	for _, f := range items {
		out = append(out, formationDTO{Name: f.Name, GK: f.GK, DEF: f.DEF, MID: f.MID, FWD: f.FWD})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

// ValidateLineup answers 200 for both valid and invalid lineups; the verdict
// is in the body. Only malformed requests get an error status.
func (h *Handler) ValidateLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ValidateLineup")
	defer span.End()

	var req validateLineupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]fantasy.LineupEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, fantasy.LineupEntry{
			PlayerID: e.PlayerID,
			Position: e.Position,
			Role:     fantasy.Role(e.Role),
		})
	}

	check, err := h.lineupService.Validate(ctx, usecase.ValidateLineupInput{
		Formation: req.Formation,
		Entries:   entries,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "validate lineup failed", "formation", req.Formation, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupCheckToDTO(ctx, check))
}
