package staff

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/WailSalutem-Health-Care/ward-service/internal/validation"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
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

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var (
		req      RegisterRequest
		photoSrc io.Reader
	)

	if view.IsForm(r) {
		if view.IsMultipart(r) {
			if err := r.ParseMultipartForm(view.MaxFormMemory); err != nil {
				http.Error(w, "invalid form body", http.StatusBadRequest)
				return
			}
			f, err := view.FormFile(r, "photo")
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
		req = RegisterRequest{
			Name:     r.FormValue("name"),
			Role:     r.FormValue("role"),
			ID:       r.FormValue("id"),
			Age:      validation.FormNumber(r.FormValue("age")),
			Password: r.FormValue("password"),
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.Register(r.Context(), req, photoSrc)
	if err != nil {
		h.fail(w, r, "registration", err)
		return
	}

	view.WriteSuccess(r.Context(), w, h.notifier, http.StatusCreated, view.ScreenProfile, view.MsgRegistered, profile)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if view.IsForm(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form body", http.StatusBadRequest)
			return
		}
		req = LoginRequest{ID: r.FormValue("loginId"), Password: r.FormValue("password")}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.fail(w, r, "login", err)
		return
	}

	view.WriteSuccess(r.Context(), w, h.notifier, http.StatusOK, view.ScreenProfile, view.MsgLoggedIn, profile)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.fail(w, r, "logout", err)
		return
	}
	view.WriteSuccess(r.Context(), w, h.notifier, http.StatusOK, view.ScreenWelcome, view.MsgLoggedOut, nil)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Profile(r.Context())
	if err != nil {
		h.fail(w, r, "profile", err)
		return
	}
	view.WriteJSON(w, http.StatusOK, view.Envelope{Screen: view.ScreenProfile, Data: profile})
}

func (h *Handler) EditProfile(w http.ResponseWriter, r *http.Request) {
	form := h.service.EditPrefill(r.Context())
	view.WriteJSON(w, http.StatusOK, view.Envelope{Screen: view.ScreenRegister, Data: form})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, flow string, err error) {
	status := view.StatusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("staff flow failed", zap.String("flow", flow), zap.Error(err))
		http.Error(w, "failed to complete "+flow, status)
		return
	}
	view.WriteFailure(r.Context(), w, h.notifier, status, err)
}
