package seed

import (
	"context"
	"testing"

	"rescue-animals/internal/adapters/storage/memory"
	"rescue-animals/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimals(t *testing.T) {
	items, err := Animals()
	require.NoError(t, err)
	require.Len(t, items, 6)

	ids := map[string]bool{}
	for _, a := range items {
		assert.NotEmpty(t, a.ID)
		assert.False(t, ids[a.ID], "duplicate id for %s", a.Name)
		ids[a.ID] = true
	}

	bella := items[2]
	assert.Equal(t, "Bella", bella.Name)
	assert.True(t, bella.Reserved)
	assert.Equal(t, animals.StatusInService, bella.TrainingStatus)

	yoda := items[5]
	assert.Equal(t, animals.KindMonkey, yoda.Kind)
	assert.Equal(t, "Squirrel Monkey", yoda.Monkey.Species)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAnimalRepo()

	n, err := Load(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	// segunda carga: todos los nombres chocan y no se agrega nada
	_, err = Load(ctx, repo)
	assert.ErrorIs(t, err, animals.ErrDuplicateName)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}
