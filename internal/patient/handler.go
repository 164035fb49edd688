package patient

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/WailSalutem-Health-Care/ward-service/internal/pagination"
	"github.com/WailSalutem-Health-Care/ward-service/internal/validation"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	service  ServiceInterface
	notifier view.Notifier
	logger   *zap.Logger
}

func NewHandler(service ServiceInterface, notifier view.Notifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, notifier: notifier, logger: logger}
}

// CreatePatient accepts the patient form as multipart (with an optional
// pPhoto file) or as JSON.
func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var (
		req      IntakeRequest
		photoSrc io.Reader
	)

	if view.IsForm(r) {
		if view.IsMultipart(r) {
			if err := r.ParseMultipartForm(view.MaxFormMemory); err != nil {
				http.Error(w, "invalid form body", http.StatusBadRequest)
				return
			}
			f, err := view.FormFile(r, "pPhoto")
			if err != nil {
				http.Error(w, "invalid photo upload", http.StatusBadRequest)
				return
			}
			if f != nil {
				defer f.Close()
				photoSrc = f
			}
		} else if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form body", http.StatusBadRequest)
			return
		}
		req = IntakeRequest{
			Name:           r.FormValue("pName"),
			ID:             r.FormValue("pId"),
			Mobile:         r.FormValue("mobile"),
			GuardianMobile: r.FormValue("gmobile"),
			Age:            validation.FormNumber(r.FormValue("page")),
			BedNo:          r.FormValue("bedNo"),
			Prescription:   r.FormValue("prescription"),
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Intake(r.Context(), req, photoSrc)
	if err != nil {
		status := view.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("patient intake failed", zap.Error(err))
			http.Error(w, "failed to save patient", status)
			return
		}
		view.WriteFailure(r.Context(), w, h.notifier, status, err)
		return
	}

	view.WriteSuccess(r.Context(), w, h.notifier, http.StatusCreated, view.ScreenProfile, view.MsgPatientSaved, result)
}

func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r)
	view.WriteJSON(w, http.StatusOK, view.Envelope{Data: h.service.ListPatients(r.Context(), params)})
}

func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	rec, err := h.service.GetPatient(r.Context(), key)
	if errors.Is(err, ErrPatientNotFound) {
		view.WriteJSON(w, http.StatusNotFound, view.Envelope{Message: "Patient not found.", Error: "PatientNotFound"})
		return
	}
	if err != nil {
		h.logger.Error("patient lookup failed", zap.String("key", key), zap.Error(err))
		http.Error(w, "failed to get patient", http.StatusInternalServerError)
		return
	}

	view.WriteJSON(w, http.StatusOK, view.Envelope{Data: rec})
}
