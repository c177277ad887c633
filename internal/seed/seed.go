package seed

import (
	"context"
	"fmt"

	"rescue-animals/internal/domain/animals"

	"github.com/google/uuid"
)

var dogs = []animals.DogInput{
	{Name: "Spot", Breed: "German Shepherd", Gender: "male", Age: 1, Weight: 25.6, AcquisitionDate: "05-12-2019", AcquisitionCountry: "United States", TrainingStatus: "intake", Reserved: false, InServiceCountry: "United States"},
	{Name: "Rex", Breed: "Great Dane", Gender: "male", Age: 3, Weight: 35.2, AcquisitionDate: "02-03-2020", AcquisitionCountry: "United States", TrainingStatus: "Phase I", Reserved: false, InServiceCountry: "United States"},
	{Name: "Bella", Breed: "Chihuahua", Gender: "female", Age: 4, Weight: 25.6, AcquisitionDate: "12-12-2019", AcquisitionCountry: "Canada", TrainingStatus: "in service", Reserved: true, InServiceCountry: "Canada"},
}

var monkeys = []animals.MonkeyInput{
	{Name: "George", Species: "Macaque", Gender: "male", Age: 1, Weight: 25.6, AcquisitionDate: "05-12-2022", AcquisitionCountry: "United States", TrainingStatus: "intake", Reserved: false, InServiceCountry: "United States", TailLength: 12.5, Height: 20.4, BodyLength: 27.6},
	{Name: "Lola", Species: "Tamarin", Gender: "female", Age: 3, Weight: 25.6, AcquisitionDate: "08-15-2020", AcquisitionCountry: "United States", TrainingStatus: "in service", Reserved: false, InServiceCountry: "United States", TailLength: 12.5, Height: 20.4, BodyLength: 27.6},
	{Name: "Yoda", Species: "Squirrel Monkey", Gender: "male", Age: 4, Weight: 25.6, AcquisitionDate: "02-06-2019", AcquisitionCountry: "Canada", TrainingStatus: "intake", Reserved: false, InServiceCountry: "Canada", TailLength: 12.5, Height: 20.4, BodyLength: 27.6},
}

// Loader es lo mínimo que necesita la carga en bloque (memory.AnimalRepo lo cumple).
type Loader interface {
	Load(ctx context.Context, items []animals.Animal) error
}

// Animals construye los registros de demo pasando por los constructores con validación.
func Animals() ([]animals.Animal, error) {
	out := make([]animals.Animal, 0, len(dogs)+len(monkeys))
	for _, in := range dogs {
		a, err := animals.NewDog(in)
		if err != nil {
			return nil, fmt.Errorf("seed dog %q: %w", in.Name, err)
		}
		a.ID = uuid.NewString()
		out = append(out, a)
	}
	for _, in := range monkeys {
		a, err := animals.NewMonkey(in)
		if err != nil {
			return nil, fmt.Errorf("seed monkey %q: %w", in.Name, err)
		}
		a.ID = uuid.NewString()
		out = append(out, a)
	}
	return out, nil
}

// Load carga los registros de demo en el registro.
func Load(ctx context.Context, l Loader) (int, error) {
	items, err := Animals()
	if err != nil {
		return 0, err
	}
	if err := l.Load(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}
