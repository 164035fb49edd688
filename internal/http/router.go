package http

import (
	"net/http"

	"github.com/WailSalutem-Health-Care/ward-service/internal/beds"
	"github.com/WailSalutem-Health-Care/ward-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/ward-service/internal/patient"
	"github.com/WailSalutem-Health-Care/ward-service/internal/photo"
	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
	"github.com/WailSalutem-Health-Care/ward-service/internal/shift"
	"github.com/WailSalutem-Health-Care/ward-service/internal/staff"
	"github.com/WailSalutem-Health-Care/ward-service/internal/telemetry"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"
)

// Deps are the collaborators the router wires into the handlers. Store is
// required; everything else has a working default.
type Deps struct {
	Store          *session.Store
	Publisher      messaging.PublisherInterface
	Metrics        *telemetry.Metrics
	Logger         *zap.Logger
	Notifier       view.Notifier
	Photos         photo.Reader
	Shifts         []shift.Entry
	AppInfo        string
	AllowedOrigins []string
}

// SetupRouter initializes all routes for the application
func SetupRouter(deps Deps) *mux.Router {
	if deps.Store == nil {
		deps.Store = session.NewStore()
	}
	if deps.Publisher == nil {
		deps.Publisher = messaging.NopPublisher{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Notifier == nil {
		deps.Notifier = view.NewLogNotifier(deps.Logger)
	}
	if deps.Photos == nil {
		deps.Photos = photo.NewDecoder(0)
	}
	if deps.AppInfo == "" {
		deps.AppInfo = view.MsgDefaultAppInfo
	}

	// Initialize staff components
	staffService := staff.NewService(staff.NewRepository(deps.Store), deps.Photos, deps.Publisher, deps.Metrics, deps.Logger)
	staffHandler := staff.NewHandler(staffService, deps.Notifier, deps.Logger)

	// Initialize patient components
	patientService := patient.NewService(patient.NewRepository(deps.Store), deps.Photos, deps.Publisher, deps.Metrics, deps.Logger)
	patientHandler := patient.NewHandler(patientService, deps.Notifier, deps.Logger)

	bedHandler := beds.NewHandler(deps.Store)

	shiftService := shift.NewService(deps.Shifts, deps.Publisher, deps.Metrics, deps.Logger)
	shiftHandler := shift.NewHandler(shiftService, staffService, deps.Notifier)

	photoHandler := photo.NewHandler(deps.Photos, deps.Metrics, deps.Logger)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware(telemetry.DefaultServiceName))
	r.Use(RequestLogging(deps.Logger, deps.Metrics))

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"ward-service"}`))
	}).Methods("GET")

	r.HandleFunc("/app/info", func(w http.ResponseWriter, r *http.Request) {
		view.WriteSuccess(r.Context(), w, deps.Notifier, http.StatusOK, "", deps.AppInfo, nil)
	}).Methods("GET")

	// Staff routes
	r.HandleFunc("/staff/register", staffHandler.Register).Methods("POST")
	r.HandleFunc("/staff/login", staffHandler.Login).Methods("POST")
	r.HandleFunc("/staff/logout", staffHandler.Logout).Methods("POST")
	r.HandleFunc("/staff/profile", staffHandler.GetProfile).Methods("GET")
	r.HandleFunc("/staff/profile/edit", staffHandler.EditProfile).Methods("GET")

	// Patient routes
	r.HandleFunc("/patients", patientHandler.CreatePatient).Methods("POST")
	r.HandleFunc("/patients", patientHandler.ListPatients).Methods("GET")
	r.HandleFunc("/patients/{key}", patientHandler.GetPatient).Methods("GET")

	// Bed board
	r.HandleFunc("/beds", bedHandler.GetBoard).Methods("GET")
	r.HandleFunc("/beds/{bedNo}", bedHandler.GetBed).Methods("GET")

	// Shift notice
	r.HandleFunc("/shifts", shiftHandler.ListShifts).Methods("GET")
	r.HandleFunc("/shifts/change-requests", shiftHandler.RequestChange).Methods("POST")

	r.HandleFunc("/photos/preview", photoHandler.CreatePreview).Methods("POST")

	return r
}

// NewHandler returns the router behind the CORS middleware, ready to serve.
func NewHandler(deps Deps) http.Handler {
	return CORSMiddleware(deps.AllowedOrigins)(SetupRouter(deps))
}
