package http

import (
	"net/http"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/service"
)

type SearchHandler struct {
	searchSvc service.SearchService
}

func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

type searchRequest struct {
	Query       string   `json:"query"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	ItemName    string   `json:"item_name"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Images      []string `json:"images"`
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	in := service.SearchInput{
		Query:       req.Query,
		Category:    req.Category,
		Location:    req.Location,
		ItemName:    req.ItemName,
		Description: req.Description,
		Date:        req.Date,
	}
	if len(req.Images) > 0 {
		in.Image = req.Images[0]
	}

	results, method, err := h.searchSvc.Search(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}

	if results == nil {
		results = []domain.SearchResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":            true,
		"results":       results,
		"search_method": method,
	})
}
