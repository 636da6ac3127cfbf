package http

import (
	"net/http"
	"strconv"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/service"
)

const defaultHistoryLimit = 10

type RewardHandler struct {
	rewardSvc service.RewardService
}

func NewRewardHandler(rewardSvc service.RewardService) *RewardHandler {
	return &RewardHandler{rewardSvc: rewardSvc}
}

func (h *RewardHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	limit := int32(defaultHistoryLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = int32(parsed)
		}
	}

	balance, history, err := h.rewardSvc.GetRewards(r.Context(), claims.UserID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	if history == nil {
		history = []domain.RewardEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"balance": balance,
		"history": history,
	})
}
