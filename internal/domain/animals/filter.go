package animals

import "strings"

// Filter es la búsqueda multi-criterio. Campo vacío (o solo espacios) = sin restricción.
// Todos los criterios presentes se combinan con AND.
type Filter struct {
	// "dog" / "monkey", o bien raza / especie.
	SpeciesOrType string
	// Grafía canónica, sensible a mayúsculas.
	TrainingStatus string
	Reserved       *bool

	AcquisitionCountry string
	InServiceCountry   string
}

// Normalize recorta los strings; los blancos quedan como "no enviados".
func (f Filter) Normalize() Filter {
	return Filter{
		SpeciesOrType:      strings.TrimSpace(f.SpeciesOrType),
		TrainingStatus:     strings.TrimSpace(f.TrainingStatus),
		Reserved:           f.Reserved,
		AcquisitionCountry: strings.TrimSpace(f.AcquisitionCountry),
		InServiceCountry:   strings.TrimSpace(f.InServiceCountry),
	}
}

func (f Filter) IsEmpty() bool {
	n := f.Normalize()
	return n.SpeciesOrType == "" &&
		n.TrainingStatus == "" &&
		n.Reserved == nil &&
		n.AcquisitionCountry == "" &&
		n.InServiceCountry == ""
}

// Matches evalúa el filtro contra un registro.
func (f Filter) Matches(a Animal) bool {
	f = f.Normalize()

	if f.Reserved != nil && a.Reserved != *f.Reserved {
		return false
	}
	if f.TrainingStatus != "" && string(a.TrainingStatus) != f.TrainingStatus {
		return false
	}
	if f.AcquisitionCountry != "" && !strings.EqualFold(a.AcquisitionCountry, f.AcquisitionCountry) {
		return false
	}
	if f.InServiceCountry != "" && !strings.EqualFold(a.InServiceCountry, f.InServiceCountry) {
		return false
	}
	if f.SpeciesOrType != "" && !matchesSpeciesOrType(a, f.SpeciesOrType) {
		return false
	}
	return true
}

func matchesSpeciesOrType(a Animal, v string) bool {
	switch a.Kind {
	case KindDog:
		return strings.EqualFold(v, string(KindDog)) || strings.EqualFold(v, a.Dog.Breed)
	case KindMonkey:
		return strings.EqualFold(v, string(KindMonkey)) || strings.EqualFold(v, a.Monkey.Species)
	default:
		return false
	}
}

// Bool es un helper para armar Filter.Reserved.
func Bool(v bool) *bool { return &v }
