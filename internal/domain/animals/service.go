package animals

import (
	"context"
	"errors"
	"strings"

	"rescue-animals/internal/platform/logger"
	"rescue-animals/internal/platform/metrics"

	"github.com/google/uuid"
)

type Service struct {
	repo    Repository
	log     logger.Logger
	metrics *metrics.Metrics

	requireVetClearance bool
}

type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithVetClearanceRequired activa la regla de visto bueno veterinario
// para la transición intake -> Phase I.
func WithVetClearanceRequired(required bool) Option {
	return func(s *Service) { s.requireVetClearance = required }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Intake registra un animal. Lo revalida y normaliza con las reglas de
// NewDog/NewMonkey; asigna ID si no trae uno.
func (s *Service) Intake(ctx context.Context, a Animal) (Animal, error) {
	a, err := a.Canonical()
	if err != nil {
		return Animal{}, err
	}
	if strings.TrimSpace(a.ID) == "" {
		a.ID = uuid.NewString()
	}

	if err := s.repo.Add(ctx, a); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			s.log.Warn("intake rejected: duplicate name", map[string]any{"name": a.Name})
		}
		return Animal{}, err
	}

	s.metrics.IncrementIntake(string(a.Kind))
	s.syncRegistered(ctx)
	s.log.Info("animal intake", map[string]any{
		"id":     a.ID,
		"name":   a.Name,
		"kind":   string(a.Kind),
		"status": string(a.TrainingStatus),
	})
	return a, nil
}

func (s *Service) IntakeDog(ctx context.Context, in DogInput) (Animal, error) {
	a, err := NewDog(in)
	if err != nil {
		return Animal{}, err
	}
	return s.Intake(ctx, a)
}

func (s *Service) IntakeMonkey(ctx context.Context, in MonkeyInput) (Animal, error) {
	a, err := NewMonkey(in)
	if err != nil {
		return Animal{}, err
	}
	return s.Intake(ctx, a)
}

func (s *Service) FindByName(ctx context.Context, name string) (Animal, error) {
	if strings.TrimSpace(name) == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.FindByName(ctx, name)
}

func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, nil
	}
	return s.repo.Exists(ctx, name)
}

// Search aplica el filtro (AND) y respeta el orden del registro: perros, luego monos.
// Sin coincidencias devuelve un slice vacío, no un error.
func (s *Service) Search(ctx context.Context, f Filter) ([]Animal, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	f = f.Normalize()
	out := make([]Animal, 0, len(all))
	for _, a := range all {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Service) ListDogs(ctx context.Context) ([]Animal, error) {
	return s.Search(ctx, Filter{SpeciesOrType: string(KindDog)})
}

func (s *Service) ListMonkeys(ctx context.Context) ([]Animal, error) {
	return s.Search(ctx, Filter{SpeciesOrType: string(KindMonkey)})
}

func (s *Service) ListUnreserved(ctx context.Context) ([]Animal, error) {
	return s.Search(ctx, Filter{Reserved: Bool(false)})
}

// ListReservable: en servicio y sin reservar.
func (s *Service) ListReservable(ctx context.Context) ([]Animal, error) {
	return s.Search(ctx, Filter{Reserved: Bool(false), TrainingStatus: string(StatusInService)})
}

// ReserveByName reserva un animal. El chequeo y la marca ocurren dentro del mismo Update.
func (s *Service) ReserveByName(ctx context.Context, name string) ReservationResult {
	res := ReservationResult{Name: strings.TrimSpace(name)}

	updated, err := s.repo.Update(ctx, name, func(a *Animal) error {
		if a.Reserved {
			return ErrAlreadyReserved
		}
		if !a.IsReservable() {
			return ErrNotEligible
		}
		a.Reserved = true
		return nil
	})

	switch {
	case err == nil:
		res.Outcome = Reserved
		res.Animal = updated
	case errors.Is(err, ErrNotFound):
		res.Outcome = ReservationNotFound
	case errors.Is(err, ErrAlreadyReserved):
		res.Outcome = ReservationAlreadyReserved
		res.Animal = s.lookup(ctx, name)
	case errors.Is(err, ErrNotEligible):
		res.Outcome = ReservationNotEligible
		res.Animal = s.lookup(ctx, name)
	default:
		res.Outcome = ReservationRejected
		res.Cause = err
		res.Animal = s.lookup(ctx, name)
	}

	s.metrics.IncrementReservation(res.Outcome.String())
	fields := map[string]any{"name": res.Name, "outcome": res.Outcome.String()}
	if res.Cause != nil {
		fields["error"] = res.Cause.Error()
	}
	if res.Outcome == Reserved {
		s.log.Info("animal reserved", fields)
	} else {
		s.log.Warn("reservation rejected", fields)
	}
	return res
}

// AdvanceOptions acompaña a AdvanceTrainingByName.
type AdvanceOptions struct {
	// VetCleared confirma el visto bueno veterinario (solo cuenta en intake).
	VetCleared bool
}

// AdvanceTrainingByName avanza una fase. En "in service" informa el estado terminal sin tocar nada.
func (s *Service) AdvanceTrainingByName(ctx context.Context, name string, opts AdvanceOptions) TrainingResult {
	res := TrainingResult{Name: strings.TrimSpace(name)}

	var before TrainingStatus
	updated, err := s.repo.Update(ctx, name, func(a *Animal) error {
		before = a.TrainingStatus
		if a.TrainingStatus.IsTerminal() {
			return errTerminal
		}
		if s.requireVetClearance && a.TrainingStatus == StatusIntake && !opts.VetCleared {
			return ErrClearanceRequired
		}
		return a.AdvanceTraining()
	})

	switch {
	case err == nil:
		res.Outcome = TrainingAdvanced
		res.Animal = updated
		res.Before = before
		res.After = updated.TrainingStatus
	case errors.Is(err, ErrNotFound):
		res.Outcome = TrainingNotFound
	case errors.Is(err, errTerminal):
		res.Outcome = TrainingTerminal
		res.Animal = s.lookup(ctx, name)
		res.Before, res.After = before, before
	case errors.Is(err, ErrClearanceRequired):
		res.Outcome = TrainingClearanceRequired
		res.Animal = s.lookup(ctx, name)
		res.Before, res.After = before, before
	default:
		res.Outcome = TrainingRejected
		res.Cause = err
		res.Animal = s.lookup(ctx, name)
		res.Before, res.After = before, before
	}

	s.metrics.IncrementTrainingAdvance(res.Outcome.String())
	fields := map[string]any{
		"name":    res.Name,
		"outcome": res.Outcome.String(),
		"before":  string(res.Before),
		"after":   string(res.After),
	}
	if res.Cause != nil {
		fields["error"] = res.Cause.Error()
	}
	if res.Outcome == TrainingAdvanced {
		s.log.Info("training advanced", fields)
	} else {
		s.log.Warn("training not advanced", fields)
	}
	return res
}

// PreviewTraining devuelve el registro guardado y la fase siguiente, sin modificar nada.
func (s *Service) PreviewTraining(ctx context.Context, name string) (Animal, TrainingStatus, error) {
	a, err := s.FindByName(ctx, name)
	if err != nil {
		return Animal{}, "", err
	}
	return a, a.NextTrainingStatus(), nil
}

// RequiresVetClearance indica si la política de visto bueno está activa.
func (s *Service) RequiresVetClearance() bool {
	return s.requireVetClearance
}

// errTerminal distingue "ya en servicio" (no es error de transición para el llamador).
var errTerminal = errors.New("training status is terminal")

func (s *Service) lookup(ctx context.Context, name string) Animal {
	a, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return Animal{}
	}
	return a
}

func (s *Service) syncRegistered(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	if n, err := s.repo.Count(ctx); err == nil {
		s.metrics.SetRegistered(n)
	}
}
