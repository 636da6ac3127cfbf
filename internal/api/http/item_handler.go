package http

import (
	"net/http"
	"strconv"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/service"

	"github.com/gorilla/mux"
)

type ItemHandler struct {
	itemSvc service.ItemService
}

func NewItemHandler(itemSvc service.ItemService) *ItemHandler {
	return &ItemHandler{itemSvc: itemSvc}
}

type reportItemRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	DateLost    string   `json:"date_lost"`
	DateFound   string   `json:"date_found"`
	Images      []string `json:"images"`
}

func (h *ItemHandler) ReportLost(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, domain.ItemTypeLost)
}

func (h *ItemHandler) ReportFound(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, domain.ItemTypeFound)
}

func (h *ItemHandler) report(w http.ResponseWriter, r *http.Request, itemType domain.ItemType) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req reportItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	occurred := req.DateLost
	if itemType == domain.ItemTypeFound {
		occurred = req.DateFound
	}

	item, err := h.itemSvc.ReportItem(r.Context(), claims.UserID, itemType, service.ReportItemInput{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		Location:     req.Location,
		OccurredDate: occurred,
		Images:       req.Images,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"ok":                     true,
		"item":                   item,
		"available_for_matching": true,
	})
}

func (h *ItemHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	lost, found, err := h.itemSvc.ListReports(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":          true,
		"lost_items":  lost,
		"found_items": found,
	})
}

func (h *ItemHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemType := domain.ItemType(vars["type"])
	if !itemType.Valid() {
		writeError(w, &domain.ValidationError{Field: "type", Reason: "must be 'lost' or 'found'"})
		return
	}
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		writeError(w, &domain.ValidationError{Field: "id", Reason: "must be an integer"})
		return
	}

	status, err := h.itemSvc.GetStatus(r.Context(), itemType, int32(id))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "item_id": id, "status": status})
}
