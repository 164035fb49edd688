package validation

import "errors"

var (
	ErrMissingField      = errors.New("required field is missing")
	ErrInvalidRole       = errors.New("role must be Doctor or Nurse")
	ErrInvalidIDFormat   = errors.New("id must contain only digits")
	ErrInvalidIDSequence = errors.New("id must not be a strictly increasing or decreasing digit sequence")
	ErrInvalidAge        = errors.New("age must be a number >= 1")
	ErrWeakPassword      = errors.New("password does not meet complexity requirements")
	ErrNoRegisteredUser  = errors.New("no registered user")
	ErrIDMismatch        = errors.New("id not recognized")
	ErrPasswordMismatch  = errors.New("password incorrect")
	ErrMissingReason     = errors.New("reason is required")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrMissingField, "MissingField"},
	{ErrInvalidRole, "InvalidRole"},
	{ErrInvalidIDFormat, "InvalidIdFormat"},
	{ErrInvalidIDSequence, "InvalidIdSequence"},
	{ErrInvalidAge, "InvalidAge"},
	{ErrWeakPassword, "WeakPassword"},
	{ErrNoRegisteredUser, "NoRegisteredUser"},
	{ErrIDMismatch, "IdMismatch"},
	{ErrPasswordMismatch, "PasswordMismatch"},
	{ErrMissingReason, "MissingReason"},
}

// Kind returns the taxonomy name of err, or "" when err is not a ward validation error.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

// IsValidationError reports whether err belongs to the validation taxonomy.
func IsValidationError(err error) bool {
	return Kind(err) != ""
}

// FieldError ties a taxonomy error to the form field that failed.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Field wraps err with the name of the failing field.
func Field(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
