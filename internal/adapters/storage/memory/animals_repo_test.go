package memory

import (
	"context"
	"errors"
	"testing"

	"rescue-animals/internal/domain/animals"

	"github.com/stretchr/testify/suite"
)

type AnimalRepoSuite struct {
	suite.Suite
	ctx  context.Context
	repo *AnimalRepo
}

func TestAnimalRepoSuite(t *testing.T) {
	suite.Run(t, new(AnimalRepoSuite))
}

func (s *AnimalRepoSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = NewAnimalRepo()
}

func dog(name string) animals.Animal {
	a, err := animals.NewDog(animals.DogInput{
		Name: name, Breed: "Mutt", Gender: "male", Age: 2, Weight: 12,
		AcquisitionDate: "04-10-2021", AcquisitionCountry: "Chile",
		TrainingStatus: "intake", InServiceCountry: "Chile",
	})
	if err != nil {
		panic(err)
	}
	a.ID = "d-" + a.Name
	return a
}

func monkey(name string) animals.Animal {
	a, err := animals.NewMonkey(animals.MonkeyInput{
		Name: name, Species: "Marmoset", Gender: "female", Age: 3, Weight: 0.4,
		AcquisitionDate: "07-22-2020", AcquisitionCountry: "Brazil",
		TrainingStatus: "in service", InServiceCountry: "Brazil",
		TailLength: 30, Height: 18, BodyLength: 20,
	})
	if err != nil {
		panic(err)
	}
	a.ID = "m-" + a.Name
	return a
}

func (s *AnimalRepoSuite) names() []string {
	items, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Name)
	}
	return out
}

func (s *AnimalRepoSuite) TestAdd_ListsDogsBeforeMonkeys() {
	s.Require().NoError(s.repo.Add(s.ctx, monkey("Momo")))
	s.Require().NoError(s.repo.Add(s.ctx, dog("Spot")))
	s.Require().NoError(s.repo.Add(s.ctx, monkey("Abu")))
	s.Require().NoError(s.repo.Add(s.ctx, dog("Rex")))

	s.Equal([]string{"Spot", "Rex", "Momo", "Abu"}, s.names())

	n, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(4, n)
}

func (s *AnimalRepoSuite) TestAdd_Rejects() {
	s.Require().NoError(s.repo.Add(s.ctx, dog("Rex")))

	s.ErrorIs(s.repo.Add(s.ctx, monkey(" REX")), animals.ErrDuplicateName)
	blank := dog("Blank")
	blank.Name = "  "
	s.ErrorIs(s.repo.Add(s.ctx, blank), animals.ErrInvalidInput)
	s.ErrorIs(s.repo.Add(s.ctx, animals.Animal{Name: "Tom", Kind: "cat"}), animals.ErrInvalidInput)

	s.Equal([]string{"Rex"}, s.names())
}

func (s *AnimalRepoSuite) TestFindByName_UsesNormalizedKey() {
	s.Require().NoError(s.repo.Add(s.ctx, dog("Bella")))

	got, err := s.repo.FindByName(s.ctx, " bELLA ")
	s.Require().NoError(err)
	s.Equal("d-Bella", got.ID)

	_, err = s.repo.FindByName(s.ctx, "Bell")
	s.ErrorIs(err, animals.ErrNotFound)

	ok, err := s.repo.Exists(s.ctx, "BELLA")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *AnimalRepoSuite) TestList_ReturnsCopies() {
	s.Require().NoError(s.repo.Add(s.ctx, dog("Spot")))

	items, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	items[0].Reserved = true

	got, err := s.repo.FindByName(s.ctx, "Spot")
	s.Require().NoError(err)
	s.False(got.Reserved)
}

func (s *AnimalRepoSuite) TestUpdate() {
	s.Require().NoError(s.repo.Add(s.ctx, monkey("Lola")))

	updated, err := s.repo.Update(s.ctx, "lola", func(a *animals.Animal) error {
		a.Reserved = true
		return nil
	})
	s.Require().NoError(err)
	s.True(updated.Reserved)

	got, _ := s.repo.FindByName(s.ctx, "Lola")
	s.True(got.Reserved)
}

func (s *AnimalRepoSuite) TestUpdate_FailureLeavesRecordUntouched() {
	s.Require().NoError(s.repo.Add(s.ctx, dog("Spot")))
	boom := errors.New("boom")

	_, err := s.repo.Update(s.ctx, "Spot", func(a *animals.Animal) error {
		a.Reserved = true
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.repo.Update(s.ctx, "Spot", func(a *animals.Animal) error {
		a.Name = "Spotty"
		return nil
	})
	s.ErrorIs(err, animals.ErrInvalidInput)

	_, err = s.repo.Update(s.ctx, "Spot", func(a *animals.Animal) error {
		a.Kind = animals.KindMonkey
		return nil
	})
	s.ErrorIs(err, animals.ErrInvalidInput)

	got, err := s.repo.FindByName(s.ctx, "Spot")
	s.Require().NoError(err)
	s.Equal(dog("Spot"), got)

	_, err = s.repo.Update(s.ctx, "Ghost", func(*animals.Animal) error { return nil })
	s.ErrorIs(err, animals.ErrNotFound)
}

func (s *AnimalRepoSuite) TestLoad_BuildsIndex() {
	s.Require().NoError(s.repo.Add(s.ctx, dog("Spot")))
	s.Require().NoError(s.repo.Load(s.ctx, []animals.Animal{monkey("George"), dog("Rex")}))

	s.Equal([]string{"Spot", "Rex", "George"}, s.names())
	ok, _ := s.repo.Exists(s.ctx, "george")
	s.True(ok)
}

func (s *AnimalRepoSuite) TestLoad_DuplicateRollsBack() {
	s.Require().NoError(s.repo.Add(s.ctx, dog("Spot")))

	err := s.repo.Load(s.ctx, []animals.Animal{dog("Rex"), monkey("spot")})
	s.ErrorIs(err, animals.ErrDuplicateName)

	s.Equal([]string{"Spot"}, s.names())
	ok, _ := s.repo.Exists(s.ctx, "Rex")
	s.False(ok)

	// el registro sigue usable
	s.Require().NoError(s.repo.Add(s.ctx, dog("Rex")))
	s.Equal([]string{"Spot", "Rex"}, s.names())
}

func (s *AnimalRepoSuite) TestLoad_UnknownKindRollsBack() {
	err := s.repo.Load(s.ctx, []animals.Animal{dog("Rex"), {Name: "Tom", Kind: "cat"}})
	s.ErrorIs(err, animals.ErrInvalidInput)
	s.Empty(s.names())
}

func (s *AnimalRepoSuite) TestRebuildIndex() {
	s.Require().NoError(s.repo.Load(s.ctx, []animals.Animal{dog("Rex"), monkey("Yoda")}))
	s.Require().NoError(s.repo.RebuildIndex())

	got, err := s.repo.FindByName(s.ctx, "yoda")
	s.Require().NoError(err)
	s.Equal(animals.KindMonkey, got.Kind)
}

func (s *AnimalRepoSuite) TestAdd_RejectsHandBuiltInvalidRecords() {
	cases := map[string]func(a *animals.Animal){
		"negative age":    func(a *animals.Animal) { a.Age = -4 },
		"unknown gender":  func(a *animals.Animal) { a.Gender = "other" },
		"unknown status":  func(a *animals.Animal) { a.TrainingStatus = "bogus" },
		"untrimmed name":  func(a *animals.Animal) { a.Name = "  Ghost  " },
		"missing breed":   func(a *animals.Animal) { a.Dog.Breed = "" },
		"impossible date": func(a *animals.Animal) { a.AcquisitionDate = "02-30-2021" },
	}

	for name, mut := range cases {
		s.Run(name, func() {
			s.SetupTest()
			a := dog("Ghost")
			mut(&a)

			s.ErrorIs(s.repo.Add(s.ctx, a), animals.ErrInvalidInput)
			s.ErrorIs(s.repo.Load(s.ctx, []animals.Animal{a}), animals.ErrInvalidInput)

			n, err := s.repo.Count(s.ctx)
			s.Require().NoError(err)
			s.Equal(0, n)
			ok, _ := s.repo.Exists(s.ctx, "ghost")
			s.False(ok)
		})
	}
}

func (s *AnimalRepoSuite) TestUpdate_RejectsInvalidMutation() {
	s.Require().NoError(s.repo.Add(s.ctx, dog("Spot")))

	_, err := s.repo.Update(s.ctx, "Spot", func(a *animals.Animal) error {
		a.TrainingStatus = "bogus"
		return nil
	})
	s.ErrorIs(err, animals.ErrInvalidInput)

	got, _ := s.repo.FindByName(s.ctx, "Spot")
	s.Equal(animals.StatusIntake, got.TrainingStatus)
}
