package handlers

import (
	"net/http"

	"github.com/enerdev/turbine-parts/internal/middleware"
)

// RegisterRoutes wires all endpoints onto the mux. Every route goes
// through rate limiting and JWT authentication (login/register/health
// are on the skip list); mutating state-machine endpoints additionally
// require the matching permission.
func RegisterRoutes(mux *http.ServeMux, api *API, authHandler *AuthHandler, authMW *middleware.AuthMiddleware, rateMW *middleware.RateLimitMiddleware) http.Handler {
	mux.HandleFunc("/health", api.Health)

	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/profile", authHandler.Profile)

	mux.HandleFunc("/api/turbines", api.Turbines)
	mux.HandleFunc("/api/turbines/", api.TurbineBySerial)
	mux.HandleFunc("/api/part-masters", api.PartMasters)
	mux.HandleFunc("/api/parts", api.Parts)
	mux.HandleFunc("/api/parts/", api.PartBySerial)

	mux.Handle("/api/install", authMW.RequirePermission("install_part")(http.HandlerFunc(api.Install)))
	mux.Handle("/api/remove", authMW.RequirePermission("remove_part")(http.HandlerFunc(api.Remove)))
	mux.Handle("/api/maintenance", authMW.RequirePermission("add_maintenance")(http.HandlerFunc(api.Maintenance)))
	mux.Handle("/api/import/parts", authMW.RequirePermission("import_parts")(http.HandlerFunc(api.ImportParts)))
	mux.Handle("/api/telemetry", authMW.RequirePermission("apply_telemetry")(http.HandlerFunc(api.Telemetry)))

	return rateMW.RateLimit(300, 60)(authMW.Authenticate(mux))
}
