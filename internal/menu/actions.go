package menu

import (
	"context"
	"errors"
	"strings"

	"rescue-animals/internal/domain/animals"
	"rescue-animals/internal/ports/auth"
)

func (a *App) adminItems() []menuItem {
	return []menuItem{
		{key: "1", label: "Intake a new dog", need: auth.CapIntake, run: a.intakeDog},
		{key: "2", label: "Intake a new monkey", need: auth.CapIntake, run: a.intakeMonkey},
		{key: "3", label: "Advance training status", need: auth.CapAdvanceTraining, run: a.advanceTraining},
		{key: "4", label: "View all dogs", need: auth.CapList, run: a.listDogs},
		{key: "5", label: "View all monkeys", need: auth.CapList, run: a.listMonkeys},
		{key: "6", label: "View all unreserved animals", need: auth.CapList, run: a.listUnreserved},
		{key: "7", label: "Multi-criteria search", need: auth.CapSearch, run: a.search},
		{key: "8", label: "View system statistics", need: auth.CapStats, run: a.stats},
	}
}

func (a *App) customerItems() []menuItem {
	return []menuItem{
		{key: "1", label: "View unreserved animals", need: auth.CapList, run: a.listUnreserved},
		{key: "2", label: "Multi-criteria search", need: auth.CapSearch, run: a.search},
		{key: "3", label: "Reserve an animal", need: auth.CapReserve, run: a.reserve},
	}
}

// nameTaken corta la intake temprano, antes de pedir el resto de los datos.
func (a *App) nameTaken(ctx context.Context, name string) bool {
	exists, err := a.svc.Exists(ctx, name)
	if err != nil || !exists {
		return false
	}
	a.printf("\nThis animal is already in our system.\n\n")
	return true
}

func (a *App) intakeDog(ctx context.Context) error {
	a.printf("\n--- Intake a New Dog ---\n")

	name, err := a.p.Text("What is the dog's name? ")
	if err != nil {
		return err
	}
	if a.nameTaken(ctx, name) {
		return nil
	}

	in := animals.DogInput{Name: name}
	if in.Breed, err = a.p.Text("What is the dog's breed? "); err != nil {
		return err
	}
	if err := a.askCommon(ctx, "dog", &commonFields{
		gender:             &in.Gender,
		age:                &in.Age,
		weight:             &in.Weight,
		acquisitionDate:    &in.AcquisitionDate,
		acquisitionCountry: &in.AcquisitionCountry,
		trainingStatus:     &in.TrainingStatus,
		inServiceCountry:   &in.InServiceCountry,
	}); err != nil {
		return err
	}

	dog, err := a.svc.IntakeDog(ctx, in)
	a.reportIntake(dog, err)
	return nil
}

func (a *App) intakeMonkey(ctx context.Context) error {
	a.printf("\n--- Intake a New Monkey ---\n")

	name, err := a.p.Text("What is the monkey's name? ")
	if err != nil {
		return err
	}
	if a.nameTaken(ctx, name) {
		return nil
	}

	species, err := a.p.Text("What is the monkey's species? ")
	if err != nil {
		return err
	}
	if _, ok := animals.CanonicalSpecies(species); !ok {
		a.printf("\nWe do not accept this species. Accepted: %s.\n\n", strings.Join(animals.AllowedSpecies(), ", "))
		return nil
	}

	in := animals.MonkeyInput{Name: name, Species: species}
	if err := a.askCommon(ctx, "monkey", &commonFields{
		gender:             &in.Gender,
		age:                &in.Age,
		weight:             &in.Weight,
		acquisitionDate:    &in.AcquisitionDate,
		acquisitionCountry: &in.AcquisitionCountry,
		trainingStatus:     &in.TrainingStatus,
		inServiceCountry:   &in.InServiceCountry,
	}); err != nil {
		return err
	}
	if in.TailLength, err = a.p.Float("What is the monkey's tail length? "); err != nil {
		return err
	}
	if in.Height, err = a.p.Float("What is the monkey's height? "); err != nil {
		return err
	}
	if in.BodyLength, err = a.p.Float("What is the monkey's body length? "); err != nil {
		return err
	}

	monkey, err := a.svc.IntakeMonkey(ctx, in)
	a.reportIntake(monkey, err)
	return nil
}

type commonFields struct {
	gender             *string
	age                *int
	weight             *float64
	acquisitionDate    *string
	acquisitionCountry *string
	trainingStatus     *string
	inServiceCountry   *string
}

func (a *App) askCommon(_ context.Context, noun string, f *commonFields) error {
	var err error
	if *f.gender, err = a.p.Gender("What is this animal's gender? (male/female): "); err != nil {
		return err
	}
	if *f.age, err = a.p.Int("What is the " + noun + "'s age? "); err != nil {
		return err
	}
	if *f.weight, err = a.p.Float("What is the " + noun + "'s weight? "); err != nil {
		return err
	}
	if *f.acquisitionDate, err = a.p.Date("What is the " + noun + "'s acquisition date? (MM-DD-YYYY) "); err != nil {
		return err
	}
	if *f.acquisitionCountry, err = a.p.Text("What is the " + noun + "'s acquisition country? "); err != nil {
		return err
	}
	if *f.trainingStatus, err = a.p.TrainingStatus("What is the " + noun + "'s training status? (" + joinStatuses() + ") "); err != nil {
		return err
	}
	if *f.inServiceCountry, err = a.p.Text("What is the " + noun + "'s in service country? "); err != nil {
		return err
	}
	return nil
}

func (a *App) reportIntake(added animals.Animal, err error) {
	if err != nil {
		a.printf("\nError: %v\n\n", err)
		return
	}
	a.printf("\n%s has been added.\n\n", added.Name)
}

func (a *App) advanceTraining(ctx context.Context) error {
	a.printf("\n--- Advance Training Status ---\n")

	name, err := a.p.Text("Which animal's status would you like to update?: ")
	if err != nil {
		return err
	}

	animal, next, err := a.svc.PreviewTraining(ctx, name)
	if err != nil {
		if errors.Is(err, animals.ErrNotFound) {
			a.printf("\n%s not found.\n\n", name)
			return nil
		}
		a.printf("\nError: %v\n\n", err)
		return nil
	}

	current := animal.TrainingStatus
	opts := animals.AdvanceOptions{}
	switch {
	case current.IsTerminal():
		// el core informa el estado terminal sin tocar nada
	case current == animals.StatusIntake && a.svc.RequiresVetClearance():
		a.printf("\n%s is currently in 'intake'.\n", animal.Name)
		cleared, err := a.p.YesNo("Has this animal received veterinary clearance?")
		if err != nil {
			return err
		}
		opts.VetCleared = cleared
	default:
		a.printf("\nCurrent status: %s\nNext status: %s\n", current, next)
		ok, err := a.p.YesNo("Advance " + animal.Name + " to next status?")
		if err != nil {
			return err
		}
		if !ok {
			a.printf("\nNo changes made.\n\n")
			return nil
		}
	}

	res := a.svc.AdvanceTrainingByName(ctx, name, opts)
	if res.Outcome == animals.TrainingAdvanced && opts.VetCleared {
		a.printf("\n%s is now vet-cleared and advanced from %s to %s.\n\n", res.Animal.Name, res.Before, res.After)
		return nil
	}
	a.printf("\n%s\n\n", res.Message())
	return nil
}

func (a *App) reserve(ctx context.Context) error {
	a.printf("\n--- Reserve an Animal ---\n")

	name, err := a.p.Text("Enter the animal name you want to reserve: ")
	if err != nil {
		return err
	}

	res := a.svc.ReserveByName(ctx, name)
	a.printf("\n%s\n\n", res.Message())
	return nil
}

func (a *App) listDogs(ctx context.Context) error {
	return a.show(a.svc.ListDogs(ctx))
}

func (a *App) listMonkeys(ctx context.Context) error {
	return a.show(a.svc.ListMonkeys(ctx))
}

func (a *App) listUnreserved(ctx context.Context) error {
	return a.show(a.svc.ListUnreserved(ctx))
}

func (a *App) search(ctx context.Context) error {
	a.printf("\n--- Multi-Criteria Search ---\n")
	a.printf("Leave any field blank to skip that filter.\n\n")

	var (
		f   animals.Filter
		err error
	)
	if f.SpeciesOrType, err = a.p.Optional("Species/type (dog/monkey OR breed/species): "); err != nil {
		return err
	}
	if f.TrainingStatus, err = a.p.Optional("Training status: "); err != nil {
		return err
	}
	reserved, err := a.p.Optional("Reserved? (yes/no/blank): ")
	if err != nil {
		return err
	}
	switch strings.ToLower(reserved) {
	case "yes", "y":
		f.Reserved = animals.Bool(true)
	case "no", "n":
		f.Reserved = animals.Bool(false)
	}
	if f.AcquisitionCountry, err = a.p.Optional("Acquisition country: "); err != nil {
		return err
	}
	if f.InServiceCountry, err = a.p.Optional("In service country: "); err != nil {
		return err
	}

	return a.show(a.svc.Search(ctx, f))
}

func (a *App) stats(_ context.Context) error {
	a.printf("\n--- System Statistics ---\n")

	samples, err := a.metrics.Snapshot()
	if err != nil {
		a.printf("\nError: %v\n\n", err)
		return nil
	}
	if len(samples) == 0 {
		a.printf("\nNo statistics recorded yet.\n\n")
		return nil
	}
	for _, s := range samples {
		a.printf("%s = %g\n", s.Name, s.Value)
	}
	a.printf("\n")
	return nil
}

func (a *App) show(items []animals.Animal, err error) error {
	if err != nil {
		a.printf("\nError: %v\n\n", err)
		return nil
	}
	printTable(a.out, items)
	return nil
}
