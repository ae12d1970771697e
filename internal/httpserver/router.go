package httpserver

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"creditcore/internal/auth"
	"creditcore/internal/datamgmt"
	"creditcore/internal/decisions"
	"creditcore/internal/logging"
)

// NewRouter assembles the API surface. The admission chain runs in order:
// CORS, request logging, API-key filter, bearer filter; protected routes then
// require a principal set by either filter.
func NewRouter(
	logger *slog.Logger,
	authSvc *auth.Service,
	userStore auth.Store,
	decisionSvc *decisions.Service,
	dataSvc *datamgmt.Service,
	apiKey string,
	corsOrigin string,
) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Auth
	mux.Handle("/api/auth/register", &auth.RegisterHandler{Service: authSvc, Logger: logger})
	mux.Handle("/api/auth/login", &auth.LoginHandler{Service: authSvc, Logger: logger})
	mux.Handle("/api/auth/check-email", &auth.CheckEmailHandler{Store: userStore, Logger: logger})

	// Profile
	mux.Handle("/api/user/profile", auth.RequireAuth(&auth.ProfileHandler{Service: authSvc, Logger: logger}))

	// Credit decisions
	mux.Handle("/api/credit-decisions", auth.RequireAuth(&decisions.CollectionHandler{Service: decisionSvc, Logger: logger}))
	mux.Handle("/api/credit-decisions/", auth.RequireAuth(&decisions.ItemHandler{Service: decisionSvc, Logger: logger}))

	// Data management
	mux.Handle("/api/data-management", auth.RequireAuth(&datamgmt.CollectionHandler{Service: dataSvc, Logger: logger}))
	mux.Handle("/api/data-management/", auth.RequireAuth(&datamgmt.ItemHandler{Service: dataSvc, Logger: logger}))

	var handler http.Handler = mux
	handler = auth.JWTMiddleware(authSvc)(handler)
	handler = auth.APIKeyMiddleware(apiKey)(handler)
	handler = logging.Middleware(logger)(handler)
	return withCORS(handler, corsOrigin)
}
