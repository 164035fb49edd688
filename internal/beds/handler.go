package beds

import (
	"net/http"

	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
	"github.com/gorilla/mux"
)

type Handler struct {
	source Source
}

func NewHandler(source Source) *Handler {
	return &Handler{source: source}
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	view.WriteJSON(w, http.StatusOK, view.Envelope{Screen: view.ScreenBeds, Data: Render(h.source)})
}

// GetBed answers for any bed number, including ones outside B1..B12.
func (h *Handler) GetBed(w http.ResponseWriter, r *http.Request) {
	bedNo := mux.Vars(r)["bedNo"]
	view.WriteJSON(w, http.StatusOK, view.Envelope{Screen: view.ScreenBedDetail, Data: DetailFor(h.source, bedNo)})
}
