package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "productcache/internal/errors"
	"productcache/internal/model"
)

func TestInMemory_InsertAndFindByID(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Connect(ctx))
	defer s.Close()

	// when
	created, err := s.Insert(ctx, "Laptop", 999.99)
	require.NoError(t, err)

	found, err := s.FindByID(ctx, created.ID)

	// then
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = s.FindByID(ctx, created.ID+1)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func TestInMemory_FindByNameContains(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()
	_, err := s.Insert(ctx, "Gaming Laptop", 1499.99)
	require.NoError(t, err)
	_, err = s.Insert(ctx, "Laptop Stand", 49.99)
	require.NoError(t, err)
	_, err = s.Insert(ctx, "Mouse", 19.99)
	require.NoError(t, err)

	// when
	list, err := s.FindByNameContains(ctx, "LAPTOP")

	// then
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Gaming Laptop", list[0].Name)
	assert.Equal(t, "Laptop Stand", list[1].Name)
}

func TestInMemory_UpdateAndDelete(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()
	created, err := s.Insert(ctx, "Keyboard", 59.99)
	require.NoError(t, err)

	// when: update an existing product
	created.Price = 39.99
	require.NoError(t, s.Update(ctx, *created))

	found, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 39.99, found.Price)

	// then: unknown IDs surface the not-found sentinel
	assert.ErrorIs(t, s.Update(ctx, model.Product{ID: 404}), perrors.ErrProductNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 404), perrors.ErrProductNotFound)

	require.NoError(t, s.Delete(ctx, created.ID))
	_, err = s.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func TestSortByID_ExtremeIDs(t *testing.T) {
	// IDs far enough apart that their difference overflows a signed
	// integer; the comparator must still order them correctly.
	list := []model.Product{
		{ID: math.MaxInt64, Name: "c"},
		{ID: math.MinInt64, Name: "a"},
		{ID: 0, Name: "b"},
	}

	sortByID(list)

	require.Len(t, list, 3)
	assert.Equal(t, int64(math.MinInt64), list[0].ID)
	assert.Equal(t, int64(0), list[1].ID)
	assert.Equal(t, int64(math.MaxInt64), list[2].ID)
}

func TestInMemory_FindAllOrderedByID(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()
	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		_, err := s.Insert(ctx, name, 1.0)
		require.NoError(t, err)
	}

	// when
	list, err := s.FindAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, name := range names {
		assert.Equal(t, name, list[i].Name)
	}
}
