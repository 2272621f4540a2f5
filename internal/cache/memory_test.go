package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productcache/internal/model"
)

func Test_MemoryCache_PutAndInvalidateProduct(t *testing.T) {
	// given
	c := NewMemoryCache()
	product := model.Product{ID: 1, Name: "Motor", Price: 99.99}

	// when
	c.Put(1, product)

	// then
	got, ok := c.Product(1)
	require.True(t, ok)
	assert.Equal(t, product, got)
	assert.True(t, c.ContainsProduct(1))

	// when
	c.Invalidate(1)

	// then
	_, ok = c.Product(1)
	assert.False(t, ok)
	assert.False(t, c.ContainsProduct(1))
}

func Test_MemoryCache_PutOverwritesExistingEntry(t *testing.T) {
	// given
	c := NewMemoryCache()
	c.Put(1, model.Product{ID: 1, Name: "Motor", Price: 99.99})

	// when
	c.Put(1, model.Product{ID: 1, Name: "Motor", Price: 149.99})

	// then
	got, ok := c.Product(1)
	require.True(t, ok)
	assert.Equal(t, 149.99, got.Price)
}

func Test_MemoryCache_InvalidateAbsentProductIsNoop(t *testing.T) {
	c := NewMemoryCache()
	c.Invalidate(42)
	assert.False(t, c.ContainsProduct(42))
}

func Test_MemoryCache_SearchTermsAreCaseInsensitive(t *testing.T) {
	// given
	c := NewMemoryCache()
	list := []model.Product{{ID: 1, Name: "Motor", Price: 99.99}}

	// when
	c.PutSearch("Motor", list)

	// then
	got, ok := c.Search("MOTOR")
	require.True(t, ok)
	assert.Equal(t, list, got)
	assert.True(t, c.ContainsSearch("motor"))
}

func Test_MemoryCache_DistinctTermsDoNotInterfere(t *testing.T) {
	// given
	c := NewMemoryCache()
	motors := []model.Product{{ID: 1, Name: "Motor", Price: 99.99}}

	// when
	c.PutSearch("motor", motors)

	// then
	_, ok := c.Search("gear")
	assert.False(t, ok)

	// when
	c.InvalidateSearch("gear")

	// then
	got, ok := c.Search("motor")
	require.True(t, ok)
	assert.Equal(t, motors, got)
}

func Test_MemoryCache_InvalidateScrubsProductFromSearchLists(t *testing.T) {
	// given
	c := NewMemoryCache()
	motorA := model.Product{ID: 1, Name: "Motor A", Price: 99.99}
	motorB := model.Product{ID: 2, Name: "Motor B", Price: 149.99}
	c.Put(1, motorA)
	c.Put(2, motorB)
	c.PutSearch("motor", []model.Product{motorA, motorB})
	c.PutSearch("a", []model.Product{motorA})

	// when
	c.Invalidate(1)

	// then: the product is gone from every cached list, but the term
	// entries themselves survive
	motors, ok := c.Search("motor")
	require.True(t, ok)
	assert.Equal(t, []model.Product{motorB}, motors)

	as, ok := c.Search("a")
	require.True(t, ok)
	assert.Empty(t, as)
}

func Test_MemoryCache_InvalidateSearchesRemovesAllTerms(t *testing.T) {
	// given
	c := NewMemoryCache()
	c.Put(1, model.Product{ID: 1, Name: "Motor", Price: 99.99})
	c.PutSearch("motor", []model.Product{{ID: 1, Name: "Motor", Price: 99.99}})
	c.PutSearch("gear", []model.Product{})

	// when
	c.InvalidateSearches()

	// then: search entries are gone, single-product entries are not
	assert.False(t, c.ContainsSearch("motor"))
	assert.False(t, c.ContainsSearch("gear"))
	assert.True(t, c.ContainsProduct(1))
}

func Test_MemoryCache_ClearEmptiesBothMaps(t *testing.T) {
	// given
	c := NewMemoryCache()
	c.Put(1, model.Product{ID: 1, Name: "Motor", Price: 99.99})
	c.PutSearch("motor", []model.Product{{ID: 1, Name: "Motor", Price: 99.99}})

	// when
	c.Clear()

	// then
	assert.False(t, c.ContainsProduct(1))
	assert.False(t, c.ContainsSearch("motor"))
}

func Test_MemoryCache_SearchReturnsDefensiveCopy(t *testing.T) {
	// given
	c := NewMemoryCache()
	stored := []model.Product{{ID: 1, Name: "Motor", Price: 99.99}}
	c.PutSearch("motor", stored)

	// when: mutate both the slice passed in and the slice handed out
	stored[0].Name = "Mutated"
	got, ok := c.Search("motor")
	require.True(t, ok)
	got[0].Name = "Also mutated"

	// then: cache state is unaffected
	again, ok := c.Search("motor")
	require.True(t, ok)
	assert.Equal(t, "Motor", again[0].Name)
}

func Test_MemoryCache_EmptyListIsPresent(t *testing.T) {
	// given: an empty result is a valid cached answer, distinct from a miss
	c := NewMemoryCache()
	c.PutSearch("unicorn", []model.Product{})

	// when
	got, ok := c.Search("unicorn")

	// then
	require.True(t, ok)
	assert.Empty(t, got)
}
