package photo

import (
	"errors"
	"net/http"
	"time"

	"github.com/WailSalutem-Health-Care/ward-service/internal/telemetry"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
	"go.uber.org/zap"
)

// Preview is the body returned for an image preview.
type Preview struct {
	DataURI string `json:"dataUri"`
}

// Handler serves image previews. It never touches the session store.
type Handler struct {
	reader  Reader
	metrics *telemetry.Metrics
	logger  *zap.Logger
}

func NewHandler(reader Reader, metrics *telemetry.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{reader: reader, metrics: metrics, logger: logger}
}

// CreatePreview reads the multipart file under "photo" and returns it as a data URI.
func (h *Handler) CreatePreview(w http.ResponseWriter, r *http.Request) {
	if !view.IsMultipart(r) {
		http.Error(w, "expected multipart/form-data", http.StatusUnsupportedMediaType)
		return
	}
	if err := r.ParseMultipartForm(view.MaxFormMemory); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	f, err := view.FormFile(r, "photo")
	if err != nil {
		http.Error(w, "invalid photo upload", http.StatusBadRequest)
		return
	}
	if f == nil {
		view.WriteJSON(w, http.StatusBadRequest, view.Envelope{Message: "No photo selected.", Error: "EmptyPhoto"})
		return
	}
	defer f.Close()

	start := time.Now()
	res := Start(h.reader, f).Wait()
	h.metrics.RecordPhotoDecode(r.Context(), "preview", float64(time.Since(start).Milliseconds()), res.Err == nil)

	switch {
	case errors.Is(res.Err, ErrEmpty):
		view.WriteJSON(w, http.StatusBadRequest, view.Envelope{Message: "No photo selected.", Error: "EmptyPhoto"})
	case errors.Is(res.Err, ErrTooLarge):
		view.WriteJSON(w, http.StatusRequestEntityTooLarge, view.Envelope{Message: "Photo is too large.", Error: "PhotoTooLarge"})
	case res.Err != nil:
		h.logger.Error("photo preview failed", zap.Error(res.Err))
		http.Error(w, "failed to read photo", http.StatusInternalServerError)
	default:
		view.WriteJSON(w, http.StatusOK, view.Envelope{Data: Preview{DataURI: res.DataURI}})
	}
}
