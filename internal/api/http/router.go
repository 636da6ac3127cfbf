package http

import (
	"context"
	"net/http"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/security"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger is the slice of the store the health endpoint needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Auth   *AuthHandler
	Item   *ItemHandler
	Claim  *ClaimHandler
	Reward *RewardHandler
	Search *SearchHandler
}

// NewRouter assembles the full HTTP surface. Login, health and metrics are
// public; everything under /api/user requires an authenticated identity and
// everything under /api/hub additionally requires the hub role.
func NewRouter(h Handlers, tokens security.TokenManager, store Pinger) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware, MetricsMiddleware)

	router.HandleFunc("/api/health", healthHandler(store)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/api/auth/login", h.Auth.Login).Methods(http.MethodPost)

	authed := AuthMiddleware(tokens)

	user := router.PathPrefix("/api/user").Subrouter()
	user.Use(authed)
	user.HandleFunc("/report-lost", h.Item.ReportLost).Methods(http.MethodPost)
	user.HandleFunc("/report-found", h.Item.ReportFound).Methods(http.MethodPost)
	user.HandleFunc("/reports", h.Item.ListReports).Methods(http.MethodGet)
	user.HandleFunc("/item/{type}/{id:[0-9]+}/status", h.Item.GetStatus).Methods(http.MethodGet)
	user.HandleFunc("/search", h.Search.Search).Methods(http.MethodPost)
	user.HandleFunc("/claim", h.Claim.CreateClaim).Methods(http.MethodPost)
	user.HandleFunc("/rewards", h.Reward.GetRewards).Methods(http.MethodGet)

	profile := router.PathPrefix("/api/auth/profile").Subrouter()
	profile.Use(authed)
	profile.HandleFunc("", h.Auth.Profile).Methods(http.MethodGet)

	hub := router.PathPrefix("/api/hub").Subrouter()
	hub.Use(authed, RequireRole(domain.UserRoleHub))
	hub.HandleFunc("/claims", h.Claim.ListClaims).Methods(http.MethodGet)
	hub.HandleFunc("/claim/{id:[0-9]+}/approve", h.Claim.ApproveClaim).Methods(http.MethodPut)
	hub.HandleFunc("/claim/{id:[0-9]+}/reject", h.Claim.RejectClaim).Methods(http.MethodPut)

	return router
}

func healthHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "database unreachable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"db":      true,
			"message": "Backend service is running with database connection",
		})
	}
}
