package memory

import (
	"context"
	"fmt"
	"sync"

	"rescue-animals/internal/domain/animals"
)

var _ animals.Repository = (*AnimalRepo)(nil)

// AnimalRepo es el registro en memoria.
//
// records es la arena (handle = posición); dogs y monkeys guardan los handles
// de cada variante en orden de inserción; byName es el índice nombre -> handle.
// Un solo RWMutex protege los cuatro juntos: el índice nunca se ve desfasado.
type AnimalRepo struct {
	mu      sync.RWMutex
	records []animals.Animal
	dogs    []int
	monkeys []int
	byName  map[string]int
}

func NewAnimalRepo() *AnimalRepo {
	return &AnimalRepo{
		byName: make(map[string]int),
	}
}

func (r *AnimalRepo) Add(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := a.Validate(); err != nil {
		return err
	}
	key := animals.NameKey(a.Name)
	if _, exists := r.byName[key]; exists {
		return animals.ErrDuplicateName
	}

	r.appendLocked(a)
	r.byName[key] = len(r.records) - 1
	return nil
}

func (r *AnimalRepo) FindByName(ctx context.Context, name string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byName[animals.NameKey(name)]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return r.records[h], nil
}

func (r *AnimalRepo) Exists(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[animals.NameKey(name)]
	return ok, nil
}

func (r *AnimalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.records))
	for _, h := range r.dogs {
		out = append(out, r.records[h])
	}
	for _, h := range r.monkeys {
		out = append(out, r.records[h])
	}
	return out, nil
}

func (r *AnimalRepo) Update(ctx context.Context, name string, fn func(a *animals.Animal) error) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := animals.NameKey(name)
	h, ok := r.byName[key]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}

	// fn trabaja sobre una copia; solo se guarda si no falla.
	cp := r.records[h]
	if err := fn(&cp); err != nil {
		return animals.Animal{}, err
	}
	if animals.NameKey(cp.Name) != key || cp.Kind != r.records[h].Kind {
		return animals.Animal{}, fmt.Errorf("%w: name and kind cannot change", animals.ErrInvalidInput)
	}
	if err := cp.Validate(); err != nil {
		return animals.Animal{}, err
	}

	r.records[h] = cp
	return cp, nil
}

func (r *AnimalRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}

// Load agrega registros en bloque sin pasar por Add (carga inicial) y reconstruye
// el índice. Si algún registro es inválido o hay nombres repetidos no queda nada cargado.
func (r *AnimalRepo) Load(ctx context.Context, items []animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prevRecords, prevDogs, prevMonkeys := len(r.records), len(r.dogs), len(r.monkeys)

	for _, a := range items {
		if err := a.Validate(); err != nil {
			r.truncateLocked(prevRecords, prevDogs, prevMonkeys)
			return fmt.Errorf("load %q: %w", a.Name, err)
		}
		r.appendLocked(a)
	}

	if err := r.rebuildIndexLocked(); err != nil {
		// el índice anterior sigue intacto
		r.truncateLocked(prevRecords, prevDogs, prevMonkeys)
		return err
	}
	return nil
}

// RebuildIndex recalcula el índice a partir de las colecciones.
func (r *AnimalRepo) RebuildIndex() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rebuildIndexLocked()
}

func (r *AnimalRepo) rebuildIndexLocked() error {
	idx := make(map[string]int, len(r.records))
	for _, handles := range [][]int{r.dogs, r.monkeys} {
		for _, h := range handles {
			key := animals.NameKey(r.records[h].Name)
			if key == "" {
				return fmt.Errorf("%w: record without name", animals.ErrInvalidInput)
			}
			if _, dup := idx[key]; dup {
				return fmt.Errorf("%w: %q", animals.ErrDuplicateName, r.records[h].Name)
			}
			idx[key] = h
		}
	}
	r.byName = idx
	return nil
}

func (r *AnimalRepo) appendLocked(a animals.Animal) {
	r.records = append(r.records, a)
	h := len(r.records) - 1
	switch a.Kind {
	case animals.KindDog:
		r.dogs = append(r.dogs, h)
	case animals.KindMonkey:
		r.monkeys = append(r.monkeys, h)
	}
}

func (r *AnimalRepo) truncateLocked(records, dogs, monkeys int) {
	r.records = r.records[:records]
	r.dogs = r.dogs[:dogs]
	r.monkeys = r.monkeys[:monkeys]
}
