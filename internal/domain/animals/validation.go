package animals

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DogInput son los datos crudos de un perro (sin normalizar).
type DogInput struct {
	Name               string
	Breed              string
	Gender             string
	Age                int
	Weight             float64
	AcquisitionDate    string
	AcquisitionCountry string
	TrainingStatus     string
	Reserved           bool
	InServiceCountry   string
}

// MonkeyInput son los datos crudos de un mono (sin normalizar).
type MonkeyInput struct {
	Name               string
	Species            string
	Gender             string
	Age                int
	Weight             float64
	AcquisitionDate    string
	AcquisitionCountry string
	TrainingStatus     string
	Reserved           bool
	InServiceCountry   string
	TailLength         float64
	Height             float64
	BodyLength         float64
}

var allowedSpecies = [...]string{"Capuchin", "Guenon", "Marmoset", "Squirrel Monkey", "Tamarin", "Macaque"}

// AllowedSpecies devuelve las especies de mono aceptadas (copia).
func AllowedSpecies() []string {
	out := make([]string, len(allowedSpecies))
	copy(out, allowedSpecies[:])
	return out
}

// CanonicalSpecies busca la especie sin distinguir mayúsculas.
func CanonicalSpecies(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, sp := range allowedSpecies {
		if strings.EqualFold(sp, s) {
			return sp, true
		}
	}
	return "", false
}

// NewDog valida y construye un perro. Ante el primer campo inválido devuelve
// *ValidationError y un Animal vacío.
func NewDog(in DogInput) (Animal, error) {
	a, err := newBase(baseInput{
		name:               in.Name,
		gender:             in.Gender,
		age:                in.Age,
		weight:             in.Weight,
		acquisitionDate:    in.AcquisitionDate,
		acquisitionCountry: in.AcquisitionCountry,
		trainingStatus:     in.TrainingStatus,
		reserved:           in.Reserved,
		inServiceCountry:   in.InServiceCountry,
	})
	if err != nil {
		return Animal{}, err
	}

	breed := strings.TrimSpace(in.Breed)
	if breed == "" {
		return Animal{}, invalid("breed", "Breed cannot be empty.")
	}

	a.Kind = KindDog
	a.Dog = DogTraits{Breed: breed}
	return a, nil
}

// NewMonkey valida y construye un mono. La especie se guarda con la grafía canónica.
func NewMonkey(in MonkeyInput) (Animal, error) {
	a, err := newBase(baseInput{
		name:               in.Name,
		gender:             in.Gender,
		age:                in.Age,
		weight:             in.Weight,
		acquisitionDate:    in.AcquisitionDate,
		acquisitionCountry: in.AcquisitionCountry,
		trainingStatus:     in.TrainingStatus,
		reserved:           in.Reserved,
		inServiceCountry:   in.InServiceCountry,
	})
	if err != nil {
		return Animal{}, err
	}

	if strings.TrimSpace(in.Species) == "" {
		return Animal{}, invalid("species", "Species cannot be empty.")
	}
	species, ok := CanonicalSpecies(in.Species)
	if !ok {
		return Animal{}, invalid("species", "Species must be one of: "+strings.Join(allowedSpecies[:], ", "))
	}
	if !positive(in.TailLength) {
		return Animal{}, invalid("tail_length", "Tail length must be greater than 0.")
	}
	if !positive(in.Height) {
		return Animal{}, invalid("height", "Height must be greater than 0.")
	}
	if !positive(in.BodyLength) {
		return Animal{}, invalid("body_length", "Body length must be greater than 0.")
	}

	a.Kind = KindMonkey
	a.Monkey = MonkeyTraits{
		Species:    species,
		TailLength: in.TailLength,
		Height:     in.Height,
		BodyLength: in.BodyLength,
	}
	return a, nil
}

type baseInput struct {
	name               string
	gender             string
	age                int
	weight             float64
	acquisitionDate    string
	acquisitionCountry string
	trainingStatus     string
	reserved           bool
	inServiceCountry   string
}

// El orden de las validaciones define qué error se reporta primero.
func newBase(in baseInput) (Animal, error) {
	name := strings.TrimSpace(in.name)
	if name == "" {
		return Animal{}, invalid("name", "Name cannot be empty.")
	}

	gender := strings.ToLower(strings.TrimSpace(in.gender))
	if gender == "" {
		return Animal{}, invalid("gender", "Gender cannot be empty.")
	}
	if Gender(gender) != GenderMale && Gender(gender) != GenderFemale {
		return Animal{}, invalid("gender", "Gender must be 'male' or 'female'.")
	}

	if in.age <= 0 {
		return Animal{}, invalid("age", "Age must be greater than 0.")
	}
	if !positive(in.weight) {
		return Animal{}, invalid("weight", "Weight must be greater than 0.")
	}

	date := strings.TrimSpace(in.acquisitionDate)
	if !ValidDate(date) {
		return Animal{}, invalid("acquisition_date", "Acquisition date must be a valid MM-DD-YYYY date after 1970.")
	}

	acqCountry := strings.TrimSpace(in.acquisitionCountry)
	if acqCountry == "" {
		return Animal{}, invalid("acquisition_country", "Acquisition country cannot be empty.")
	}

	status := TrainingStatus(strings.TrimSpace(in.trainingStatus))
	if !status.Valid() {
		return Animal{}, invalid("training_status", "Training status must be one of: "+statusList())
	}

	svcCountry := strings.TrimSpace(in.inServiceCountry)
	if svcCountry == "" {
		return Animal{}, invalid("in_service_country", "In service country cannot be empty.")
	}

	return Animal{
		Name:               name,
		Gender:             Gender(gender),
		Age:                in.age,
		Weight:             in.weight,
		AcquisitionDate:    date,
		AcquisitionCountry: acqCountry,
		TrainingStatus:     status,
		Reserved:           in.reserved,
		InServiceCountry:   svcCountry,
	}, nil
}

// ValidDate acepta MM-DD-YYYY (mes y día de 1 o 2 dígitos, año de 4),
// fecha real de calendario y año posterior a 1970.
func ValidDate(value string) bool {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return false
	}
	mm, dd, yyyy := parts[0], parts[1], parts[2]
	if !digits(mm, 1, 2) || !digits(dd, 1, 2) || !digits(yyyy, 4, 4) {
		return false
	}

	m, _ := strconv.Atoi(mm)
	d, _ := strconv.Atoi(dd)
	y, _ := strconv.Atoi(yyyy)

	if y <= 1970 || m < 1 || m > 12 || d < 1 {
		return false
	}
	// día 0 del mes siguiente = último día de este mes
	last := time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return d <= last
}

func digits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

// Canonical vuelve a pasar el registro por NewDog/NewMonkey y devuelve su forma
// normalizada, conservando el ID.
func (a Animal) Canonical() (Animal, error) {
	var (
		out Animal
		err error
	)
	switch a.Kind {
	case KindDog:
		out, err = NewDog(DogInput{
			Name:               a.Name,
			Breed:              a.Dog.Breed,
			Gender:             string(a.Gender),
			Age:                a.Age,
			Weight:             a.Weight,
			AcquisitionDate:    a.AcquisitionDate,
			AcquisitionCountry: a.AcquisitionCountry,
			TrainingStatus:     string(a.TrainingStatus),
			Reserved:           a.Reserved,
			InServiceCountry:   a.InServiceCountry,
		})
	case KindMonkey:
		out, err = NewMonkey(MonkeyInput{
			Name:               a.Name,
			Species:            a.Monkey.Species,
			Gender:             string(a.Gender),
			Age:                a.Age,
			Weight:             a.Weight,
			AcquisitionDate:    a.AcquisitionDate,
			AcquisitionCountry: a.AcquisitionCountry,
			TrainingStatus:     string(a.TrainingStatus),
			Reserved:           a.Reserved,
			InServiceCountry:   a.InServiceCountry,
			TailLength:         a.Monkey.TailLength,
			Height:             a.Monkey.Height,
			BodyLength:         a.Monkey.BodyLength,
		})
	default:
		return Animal{}, invalid("kind", "We do not currently accept this animal type.")
	}
	if err != nil {
		return Animal{}, err
	}
	out.ID = a.ID
	return out, nil
}

// Validate exige que el registro cumpla las reglas de construcción y que ya esté
// normalizado (lo que devolverían NewDog/NewMonkey).
func (a Animal) Validate() error {
	c, err := a.Canonical()
	if err != nil {
		return err
	}
	if c != a {
		return invalid("record", "Record is not normalized; build it with NewDog or NewMonkey.")
	}
	return nil
}
