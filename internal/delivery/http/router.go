package http

import (
	"net/http"

	"doctorbot/internal/delivery/http/handler"
	"doctorbot/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	webhookHandler    *handler.WebhookHandler
	authHandler       *handler.AuthHandler
	doctorHandler     *handler.DoctorHandler
	polyclinicHandler *handler.PolyclinicHandler
	shareHandler      *handler.ShareHandler
	scheduleHandler   *handler.ScheduleHandler
	lookupHandler     *handler.LookupHandler
	contactHandler    *handler.ContactHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	webhookHandler *handler.WebhookHandler,
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	polyclinicHandler *handler.PolyclinicHandler,
	shareHandler *handler.ShareHandler,
	scheduleHandler *handler.ScheduleHandler,
	lookupHandler *handler.LookupHandler,
	contactHandler *handler.ContactHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		webhookHandler:    webhookHandler,
		authHandler:       authHandler,
		doctorHandler:     doctorHandler,
		polyclinicHandler: polyclinicHandler,
		shareHandler:      shareHandler,
		scheduleHandler:   scheduleHandler,
		lookupHandler:     lookupHandler,
		contactHandler:    contactHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Webhook delivery (authenticated by the secret token header)
	api.HandleFunc("/webhook/telegram", r.webhookHandler.Receive).Methods(http.MethodPost)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Back-office routes (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors/{id}/duplicate", r.doctorHandler.Duplicate).Methods(http.MethodPost)

	admin.HandleFunc("/polyclinics", r.polyclinicHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/polyclinics", r.polyclinicHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/polyclinics/{id}", r.polyclinicHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/polyclinics/{id}", r.polyclinicHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/polyclinics/{id}", r.polyclinicHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/polyclinics/{id}/duplicate", r.polyclinicHandler.Duplicate).Methods(http.MethodPost)

	admin.HandleFunc("/shares", r.shareHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/shares", r.shareHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/shares/{id}", r.shareHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/shares/{id}", r.shareHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/shares/{id}", r.shareHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/schedules", r.scheduleHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/schedules", r.scheduleHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/schedules/{id}", r.scheduleHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/schedules/{id}", r.scheduleHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/schedules/{id}", r.scheduleHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/specialities", r.lookupHandler.CreateSpeciality).Methods(http.MethodPost)
	admin.HandleFunc("/specialities", r.lookupHandler.GetSpecialities).Methods(http.MethodGet)
	admin.HandleFunc("/specialities/{id}", r.lookupHandler.UpdateSpeciality).Methods(http.MethodPut)
	admin.HandleFunc("/specialities/{id}", r.lookupHandler.DeleteSpeciality).Methods(http.MethodDelete)

	admin.HandleFunc("/districts", r.lookupHandler.CreateDistrict).Methods(http.MethodPost)
	admin.HandleFunc("/districts", r.lookupHandler.GetDistricts).Methods(http.MethodGet)
	admin.HandleFunc("/districts/{id}", r.lookupHandler.UpdateDistrict).Methods(http.MethodPut)
	admin.HandleFunc("/districts/{id}", r.lookupHandler.DeleteDistrict).Methods(http.MethodDelete)

	admin.HandleFunc("/positions", r.lookupHandler.CreatePosition).Methods(http.MethodPost)
	admin.HandleFunc("/positions", r.lookupHandler.GetPositions).Methods(http.MethodGet)
	admin.HandleFunc("/positions/{id}", r.lookupHandler.UpdatePosition).Methods(http.MethodPut)
	admin.HandleFunc("/positions/{id}", r.lookupHandler.DeletePosition).Methods(http.MethodDelete)

	admin.HandleFunc("/phones", r.contactHandler.CreatePhone).Methods(http.MethodPost)
	admin.HandleFunc("/phones", r.contactHandler.GetPhones).Methods(http.MethodGet)
	admin.HandleFunc("/phones/{id}", r.contactHandler.DeletePhone).Methods(http.MethodDelete)

	admin.HandleFunc("/addresses", r.contactHandler.CreateAddress).Methods(http.MethodPost)
	admin.HandleFunc("/addresses", r.contactHandler.GetAddresses).Methods(http.MethodGet)
	admin.HandleFunc("/addresses/{id}", r.contactHandler.DeleteAddress).Methods(http.MethodDelete)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
