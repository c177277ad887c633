package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los contadores del sistema. Se registran en un registry propio:
// no hay endpoint /metrics, el menú de admin lee Snapshot().
// Un *Metrics nil es válido y no hace nada.
type Metrics struct {
	registry *prometheus.Registry

	Intakes          *prometheus.CounterVec
	Reservations     *prometheus.CounterVec
	TrainingAdvances *prometheus.CounterVec
	Registered       prometheus.Gauge
	LoginFailures    prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Intakes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rescue_animals_intake_total",
			Help: "Total number of animals taken in, by kind",
		}, []string{"kind"}),
		Reservations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rescue_animals_reservations_total",
			Help: "Reservation attempts by outcome",
		}, []string{"outcome"}),
		TrainingAdvances: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rescue_animals_training_advances_total",
			Help: "Training advance attempts by outcome",
		}, []string{"outcome"}),
		Registered: f.NewGauge(prometheus.GaugeOpts{
			Name: "rescue_animals_registered",
			Help: "Current number of animals in the registry",
		}),
		LoginFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "rescue_auth_login_failures_total",
			Help: "Total number of failed login attempts",
		}),
	}
}

func (m *Metrics) IncrementIntake(kind string) {
	if m == nil {
		return
	}
	m.Intakes.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementReservation(outcome string) {
	if m == nil {
		return
	}
	m.Reservations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementTrainingAdvance(outcome string) {
	if m == nil {
		return
	}
	m.TrainingAdvances.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetRegistered(count int) {
	if m == nil {
		return
	}
	m.Registered.Set(float64(count))
}

func (m *Metrics) IncrementLoginFailures() {
	if m == nil {
		return
	}
	m.LoginFailures.Inc()
}

// Registry expone el registry propio (tests / exportadores).
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Sample es una serie con su valor actual.
type Sample struct {
	Name  string
	Value float64
}

// Snapshot junta counters y gauges como "nombre{label=valor}" ordenados por nombre.
func (m *Metrics) Snapshot() ([]Sample, error) {
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make([]Sample, 0)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var v float64
			switch {
			case metric.GetCounter() != nil:
				v = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				v = metric.GetGauge().GetValue()
			default:
				continue
			}

			labels := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			out = append(out, Sample{Name: name, Value: v})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
