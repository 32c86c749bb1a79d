package http

import (
	"net/http"

	"hospital-patient-api/internal/delivery/http/handler"
	"hospital-patient-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	diagnosisHandler *handler.DiagnosisHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		diagnosisHandler: diagnosisHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := r.router.PathPrefix("/logout").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("", r.authHandler.Logout).Methods(http.MethodPost)

	// Patient routes (protected)
	patients := r.router.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)
	patients.HandleFunc("/search", r.patientHandler.Search).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Diagnosis routes (protected)
	diagnoses := r.router.PathPrefix("/diagnoses").Subrouter()
	diagnoses.Use(r.authMiddleware.Authenticate)
	diagnoses.HandleFunc("", r.diagnosisHandler.Create).Methods(http.MethodPost)
	diagnoses.HandleFunc("/top-diagnoses-last-six-months", r.diagnosisHandler.TopDiagnoses).Methods(http.MethodGet)
	diagnoses.HandleFunc("/{patient_id}/assign-diagnosis", r.diagnosisHandler.Assign).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
