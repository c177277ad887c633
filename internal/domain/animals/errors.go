package animals

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateName     = errors.New("this animal is already in our system")
	ErrNotFound          = errors.New("animal not found")
	ErrAlreadyReserved   = errors.New("animal already reserved")
	ErrNotEligible       = errors.New("animal not eligible for reservation")
	ErrInvalidTransition = errors.New("invalid training transition")
	ErrClearanceRequired = errors.New("veterinary clearance required")
)

// ValidationError indica el primer campo inválido encontrado al construir un registro.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
