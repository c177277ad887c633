package animals

// Kind identifica la variante del registro (tag cerrado).
// @Enum dog, monkey
type Kind string

const (
	KindDog    Kind = "dog"
	KindMonkey Kind = "monkey"
)

// Gender define el sexo del animal.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// DogTraits son los campos propios de un perro.
type DogTraits struct {
	Breed string
}

// MonkeyTraits son los campos propios de un mono.
type MonkeyTraits struct {
	Species    string
	TailLength float64
	Height     float64
	BodyLength float64
}

// Animal representa un animal rescatado. Se arma con NewDog/NewMonkey; un registro
// armado a mano pasa por Validate antes de entrar al registro (Service.Intake y
// AnimalRepo lo verifican).
type Animal struct {
	ID   string
	Kind Kind

	Name   string
	Gender Gender
	Age    int
	Weight float64

	AcquisitionDate    string // MM-DD-YYYY
	AcquisitionCountry string

	TrainingStatus   TrainingStatus
	Reserved         bool
	InServiceCountry string

	// Solo uno aplica, según Kind.
	Dog    DogTraits
	Monkey MonkeyTraits
}

// IsReservable: en servicio y todavía sin reservar.
func (a Animal) IsReservable() bool {
	return a.TrainingStatus == StatusInService && !a.Reserved
}

func (a Animal) NextTrainingStatus() TrainingStatus {
	return a.TrainingStatus.Next()
}

// AdvanceTraining mueve el animal a la siguiente fase.
// Desde "in service" devuelve ErrInvalidTransition y no toca el estado.
func (a *Animal) AdvanceTraining() error {
	next, err := Advance(a.TrainingStatus)
	if err != nil {
		return err
	}
	a.TrainingStatus = next
	return nil
}

// TypeOrSpecies devuelve la raza (perro) o la especie (mono).
func (a Animal) TypeOrSpecies() string {
	switch a.Kind {
	case KindDog:
		return a.Dog.Breed
	case KindMonkey:
		return a.Monkey.Species
	default:
		return "Unknown"
	}
}
