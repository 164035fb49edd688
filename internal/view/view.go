// Package view describes what the client should show after each flow: the
// screen to activate and the acknowledgement to display.
package view

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/WailSalutem-Health-Care/ward-service/internal/validation"
	"go.uber.org/zap"
)

// Screen names one panel of the client. Exactly one screen is active.
type Screen string

const (
	ScreenWelcome     Screen = "welcome"
	ScreenLogin       Screen = "login"
	ScreenRegister    Screen = "register"
	ScreenProfile     Screen = "profile"
	ScreenPatientForm Screen = "patient-form"
	ScreenBeds        Screen = "beds"
	ScreenBedDetail   Screen = "bed-detail"
	ScreenShifts      Screen = "shifts"
	ScreenSettings    Screen = "settings"
)

// Success acknowledgements.
const (
	MsgRegistered           = "Registered successfully."
	MsgLoggedIn             = "Welcome back."
	MsgLoggedOut            = "Logged out."
	MsgPatientSaved         = "Patient saved."
	MsgShiftChangeRequested = "Shift change requested. Reason saved: "
	MsgDefaultAppInfo       = "MyCare v1. Simple ward and patient front-end prototype."
)

var failureMessages = map[error]string{
	validation.ErrMissingField:      "Please fill in the required field.",
	validation.ErrInvalidRole:       "Role must be Doctor or Nurse.",
	validation.ErrInvalidIDFormat:   "ID must contain only numbers.",
	validation.ErrInvalidIDSequence: "ID must not be a strictly increasing or decreasing sequence (e.g. 1234 or 4321). Choose a different numeric ID.",
	validation.ErrInvalidAge:        "Age must be a positive number (>=1).",
	validation.ErrWeakPassword:      "Password must be at least 8 characters and include lowercase, uppercase, number, and special character.",
	validation.ErrNoRegisteredUser:  "No registered user. Please register first.",
	validation.ErrIDMismatch:        "ID not recognized. Please use the registered ID.",
	validation.ErrPasswordMismatch:  "Password incorrect. Please use the password you registered with.",
	validation.ErrMissingReason:     "Please provide a reason for the shift change.",
}

var missingFieldMessages = map[string]string{
	"name":  "Enter name.",
	"pName": "Patient name required.",
}

// Message returns the user-facing text for a flow failure. Every taxonomy
// error has its own text.
func Message(err error) string {
	var fe *validation.FieldError
	if errors.As(err, &fe) && errors.Is(fe.Err, validation.ErrMissingField) {
		if msg, ok := missingFieldMessages[fe.Field]; ok {
			return msg
		}
	}
	for target, msg := range failureMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return "Something went wrong. Please try again."
}

// Envelope is the body of every flow response.
type Envelope struct {
	Screen  Screen      `json:"screen,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Notifier surfaces a blocking acknowledgement to the user.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// LogNotifier records every acknowledgement in the service log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, message string) {
	n.logger.Info("notification", zap.String("message", message))
}

// WriteJSON writes env with the given status.
func WriteJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

// WriteSuccess notifies msg and shows screen.
func WriteSuccess(ctx context.Context, w http.ResponseWriter, n Notifier, status int, screen Screen, msg string, data interface{}) {
	if msg != "" && n != nil {
		n.Notify(ctx, msg)
	}
	WriteJSON(w, status, Envelope{Screen: screen, Message: msg, Data: data})
}

// WriteFailure notifies the message for err. The active screen is left as is.
func WriteFailure(ctx context.Context, w http.ResponseWriter, n Notifier, status int, err error) {
	msg := Message(err)
	if n != nil {
		n.Notify(ctx, msg)
	}
	WriteJSON(w, status, Envelope{Message: msg, Error: validation.Kind(err)})
}

// StatusFor picks the HTTP status for a flow failure.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, validation.ErrNoRegisteredUser):
		return http.StatusNotFound
	case errors.Is(err, validation.ErrIDMismatch), errors.Is(err, validation.ErrPasswordMismatch):
		return http.StatusUnauthorized
	case validation.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MaxFormMemory bounds the in-memory part of multipart form parsing.
const MaxFormMemory = 8 << 20

// IsMultipart reports whether r carries multipart/form-data.
func IsMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// IsForm reports whether r carries an HTML form, multipart or urlencoded.
func IsForm(r *http.Request) bool {
	return IsMultipart(r) || strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}

// FormFile returns the uploaded file under field, or nil when none was sent.
// The caller closes the returned file.
func FormFile(r *http.Request, field string) (multipart.File, error) {
	f, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
