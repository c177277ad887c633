package animals

import (
	"fmt"
	"strings"
)

// TrainingStatus es la fase de entrenamiento. El orden importa.
// @Enum intake, Phase I, Phase II, Phase III, Phase IV, in service
type TrainingStatus string

const (
	StatusIntake    TrainingStatus = "intake"
	StatusPhaseI    TrainingStatus = "Phase I"
	StatusPhaseII   TrainingStatus = "Phase II"
	StatusPhaseIII  TrainingStatus = "Phase III"
	StatusPhaseIV   TrainingStatus = "Phase IV"
	StatusInService TrainingStatus = "in service"
)

var trainingOrder = [...]TrainingStatus{
	StatusIntake,
	StatusPhaseI,
	StatusPhaseII,
	StatusPhaseIII,
	StatusPhaseIV,
	StatusInService,
}

// "in service" es absorbente: apunta a sí mismo.
var trainingSuccessor = map[TrainingStatus]TrainingStatus{
	StatusIntake:    StatusPhaseI,
	StatusPhaseI:    StatusPhaseII,
	StatusPhaseII:   StatusPhaseIII,
	StatusPhaseIII:  StatusPhaseIV,
	StatusPhaseIV:   StatusInService,
	StatusInService: StatusInService,
}

// TrainingStatuses devuelve las fases en orden (copia).
func TrainingStatuses() []TrainingStatus {
	out := make([]TrainingStatus, len(trainingOrder))
	copy(out, trainingOrder[:])
	return out
}

// ParseTrainingStatus acepta solo la grafía canónica (se recortan espacios).
func ParseTrainingStatus(s string) (TrainingStatus, error) {
	st := TrainingStatus(strings.TrimSpace(s))
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown training status %q", ErrInvalidInput, s)
	}
	return st, nil
}

func (s TrainingStatus) Valid() bool {
	_, ok := trainingSuccessor[s]
	return ok
}

func (s TrainingStatus) IsTerminal() bool {
	return s == StatusInService
}

// Next devuelve la fase siguiente; un estado terminal o desconocido se devuelve tal cual.
func (s TrainingStatus) Next() TrainingStatus {
	if next, ok := trainingSuccessor[s]; ok {
		return next
	}
	return s
}

func (s TrainingStatus) String() string { return string(s) }

// Advance valida y calcula la transición desde from.
func Advance(from TrainingStatus) (TrainingStatus, error) {
	if !from.Valid() {
		return from, fmt.Errorf("%w: unknown training status %q", ErrInvalidTransition, from)
	}
	if from.IsTerminal() {
		return from, fmt.Errorf("%w: already %q and cannot advance further", ErrInvalidTransition, from)
	}
	return trainingSuccessor[from], nil
}

func statusList() string {
	parts := make([]string, 0, len(trainingOrder))
	for _, s := range trainingOrder {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}
