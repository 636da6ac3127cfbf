package http

import (
	"net/http"
	"strconv"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/service"

	"github.com/gorilla/mux"
)

type ClaimHandler struct {
	claimSvc service.ClaimService
}

func NewClaimHandler(claimSvc service.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimSvc: claimSvc}
}

type createClaimRequest struct {
	ItemID   int32  `json:"item_id"`
	ItemType string `json:"item_type"`
}

func (h *ClaimHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req createClaimRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ItemID == 0 || req.ItemType == "" {
		writeError(w, &domain.ValidationError{Field: "item_id/item_type", Reason: "are required"})
		return
	}

	claim, err := h.claimSvc.CreateClaim(r.Context(), claims.UserID, req.ItemID, domain.ItemType(req.ItemType))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "claim": claim})
}

func (h *ClaimHandler) ListClaims(w http.ResponseWriter, r *http.Request) {
	status := domain.ClaimStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.ClaimStatusPending
	}

	claims, err := h.claimSvc.ListClaims(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "claims": claims})
}

func (h *ClaimHandler) ApproveClaim(w http.ResponseWriter, r *http.Request) {
	claimID, err := claimIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	claim, err := h.claimSvc.ApproveClaim(r.Context(), claimID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "claim_id": claim.ID, "status": claim.Status})
}

func (h *ClaimHandler) RejectClaim(w http.ResponseWriter, r *http.Request) {
	claimID, err := claimIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	claim, err := h.claimSvc.RejectClaim(r.Context(), claimID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "claim_id": claim.ID, "status": claim.Status})
}

func claimIDFromPath(r *http.Request) (int32, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, &domain.ValidationError{Field: "id", Reason: "must be an integer"}
	}
	return int32(id), nil
}
