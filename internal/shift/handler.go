package shift

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/WailSalutem-Health-Care/ward-service/internal/validation"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
)

// StaffLookup returns the id of the logged-in staff member, if any.
type StaffLookup interface {
	CurrentStaffID() (string, bool)
}

type Handler struct {
	service  ServiceInterface
	staff    StaffLookup
	notifier view.Notifier
}

func NewHandler(service ServiceInterface, staff StaffLookup, notifier view.Notifier) *Handler {
	return &Handler{service: service, staff: staff, notifier: notifier}
}

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	entries := h.service.List(r.Context())
	view.WriteJSON(w, http.StatusOK, view.Envelope{
		Screen: view.ScreenShifts,
		Data: map[string]interface{}{
			"shifts": entries,
			"count":  len(entries),
		},
	})
}

func (h *Handler) RequestChange(w http.ResponseWriter, r *http.Request) {
	var req ChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	requestedBy := ""
	if h.staff != nil {
		requestedBy, _ = h.staff.CurrentStaffID()
	}

	ack, err := h.service.RequestChange(r.Context(), req, requestedBy)
	if err != nil {
		if errors.Is(err, validation.ErrMissingReason) {
			view.WriteFailure(r.Context(), w, h.notifier, http.StatusBadRequest, err)
			return
		}
		http.Error(w, "failed to request shift change", http.StatusInternalServerError)
		return
	}

	view.WriteSuccess(r.Context(), w, h.notifier, http.StatusAccepted, view.ScreenShifts, ack.Message, ack)
}
