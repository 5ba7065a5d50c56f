package router

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flowspace-dev/flowspace/internal/middleware/metrics"
	rl "github.com/flowspace-dev/flowspace/internal/middleware/ratelimiter"
	"github.com/flowspace-dev/flowspace/internal/setup"

	mw "github.com/flowspace-dev/flowspace/internal/middleware"
)

// New creates and configures a new mux router with all the routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints combined in that subrouter
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedOrigins(deps.Config.Public.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	// JSON API only, no scripts/styles needed
	apiCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(deps.Config.Public.SecureCookies, apiCSP))

	r.Use(metrics.Middleware)

	// Wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready(deps.Storage)).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Auth routes: credential endpoints get strict per-IP limits
	auth := api.PathPrefix("/auth").Subrouter()
	authLimited := auth.NewRoute().Subrouter()
	authLimited.Use(mw.RateLimit(rl.OnceInSecond(), mw.GetIP))
	authLimited.Use(mw.GlobalRateLimit(rl.New(1000, 1000, time.Hour)))
	authLimited.HandleFunc("/register", h.Register).Methods("POST")
	authLimited.HandleFunc("/login", h.Login).Methods("POST")
	auth.HandleFunc("/logout", h.Logout).Methods("POST")

	// Logged-in routes
	loggedIn := api.NewRoute().Subrouter()
	loggedIn.Use(authMw.NeedAuth())
	loggedIn.Use(mw.RateLimit(rl.Rps100(), mw.GetUserIdentity))

	loggedIn.HandleFunc("/auth/me", h.Me).Methods("GET")
	loggedIn.HandleFunc("/user/profile", h.UpdateProfile).Methods("PUT")

	loggedIn.HandleFunc("/boards", h.CreateBoard).Methods("POST")
	loggedIn.HandleFunc("/boards", h.ListBoards).Methods("GET")
	loggedIn.HandleFunc("/boards/{id}", h.GetBoard).Methods("GET")
	loggedIn.HandleFunc("/boards/{id}", h.DeleteBoard).Methods("DELETE")
	loggedIn.HandleFunc("/boards/{id}/columns", h.AddColumn).Methods("POST")

	// Invite creation is the abuse-prone endpoint, keep it slower
	loggedIn.Handle("/invite", mw.RateLimit(rl.Rps10(), mw.GetUserIdentity)(http.HandlerFunc(h.CreateInvite))).Methods("POST")
	loggedIn.HandleFunc("/invite/{token}/accept", h.AcceptInvite).Methods("POST")
	loggedIn.HandleFunc("/invite/board/{boardId}", h.ListBoardInvites).Methods("GET")
	loggedIn.HandleFunc("/invite/{token}", h.RevokeInvite).Methods("DELETE")

	loggedIn.HandleFunc("/cards/{boardId}/cards", h.CreateCard).Methods("POST")
	loggedIn.HandleFunc("/cards/{boardId}/cards", h.ListCards).Methods("GET")
	loggedIn.HandleFunc("/cards/{id}", h.UpdateCard).Methods("PUT")
	loggedIn.HandleFunc("/cards/{id}", h.DeleteCard).Methods("DELETE")

	loggedIn.HandleFunc("/activity", h.GetActivity).Methods("GET")

	return r
}
