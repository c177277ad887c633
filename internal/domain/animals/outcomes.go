package animals

import "fmt"

// ReservationOutcome es el resultado de ReserveByName.
type ReservationOutcome int

const (
	Reserved ReservationOutcome = iota
	ReservationNotFound
	ReservationAlreadyReserved
	ReservationNotEligible
	ReservationRejected
)

func (o ReservationOutcome) String() string {
	switch o {
	case Reserved:
		return "reserved"
	case ReservationNotFound:
		return "not_found"
	case ReservationAlreadyReserved:
		return "already_reserved"
	case ReservationNotEligible:
		return "not_eligible"
	case ReservationRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

type ReservationResult struct {
	Outcome ReservationOutcome
	// Name es el nombre pedido; Animal solo viene si se encontró.
	Name   string
	Animal Animal

	// Cause guarda el error del registro cuando Outcome == ReservationRejected.
	Cause error
}

func (r ReservationResult) Err() error {
	switch r.Outcome {
	case Reserved:
		return nil
	case ReservationNotFound:
		return ErrNotFound
	case ReservationAlreadyReserved:
		return ErrAlreadyReserved
	case ReservationNotEligible:
		return ErrNotEligible
	default:
		return r.Cause
	}
}

func (r ReservationResult) Message() string {
	switch r.Outcome {
	case Reserved:
		return fmt.Sprintf("%s has been reserved.", r.Animal.Name)
	case ReservationNotFound:
		return fmt.Sprintf("%s not found. Please try again.", r.Name)
	case ReservationAlreadyReserved:
		return fmt.Sprintf("%s is already reserved.", r.Animal.Name)
	case ReservationNotEligible:
		return fmt.Sprintf("%s is not eligible for reservation until it is in service.", r.Animal.Name)
	default:
		return fmt.Sprintf("Cannot reserve %s: %v", r.Name, r.Cause)
	}
}

// TrainingOutcome es el resultado de AdvanceTrainingByName.
type TrainingOutcome int

const (
	TrainingAdvanced TrainingOutcome = iota
	TrainingNotFound
	TrainingTerminal
	TrainingClearanceRequired
	TrainingRejected
)

func (o TrainingOutcome) String() string {
	switch o {
	case TrainingAdvanced:
		return "advanced"
	case TrainingNotFound:
		return "not_found"
	case TrainingTerminal:
		return "terminal"
	case TrainingClearanceRequired:
		return "clearance_required"
	case TrainingRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

type TrainingResult struct {
	Outcome TrainingOutcome
	Name    string
	Animal  Animal

	Before TrainingStatus
	After  TrainingStatus

	// Cause guarda el error de la transición cuando Outcome == TrainingRejected.
	Cause error
}

func (r TrainingResult) Err() error {
	switch r.Outcome {
	case TrainingAdvanced:
		return nil
	case TrainingNotFound:
		return ErrNotFound
	case TrainingClearanceRequired:
		return ErrClearanceRequired
	case TrainingRejected:
		if r.Cause != nil {
			return r.Cause
		}
		return ErrInvalidTransition
	default:
		return ErrInvalidTransition
	}
}

func (r TrainingResult) Message() string {
	switch r.Outcome {
	case TrainingAdvanced:
		return fmt.Sprintf("%s advanced from %s to %s.", r.Animal.Name, r.Before, r.After)
	case TrainingNotFound:
		return fmt.Sprintf("%s not found. Please try again.", r.Name)
	case TrainingTerminal:
		return fmt.Sprintf("%s is already 'in service' and cannot advance further.", r.Animal.Name)
	case TrainingClearanceRequired:
		return "Cannot advance. Animal must be vet-cleared to begin training."
	default:
		return fmt.Sprintf("Cannot advance training: %v", r.Err())
	}
}
