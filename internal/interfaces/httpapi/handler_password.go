package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckPassword")
	defer span.End()

	var req checkPasswordRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	policy := strings.TrimSpace(req.Policy)
	if policy == "" {
		policy = h.passwordService.DefaultPolicy()
	}

	result, err := h.passwordService.Check(ctx, policy, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "check password failed", "policy", policy, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, passwordResultToDTO(ctx, policy, result))
}
