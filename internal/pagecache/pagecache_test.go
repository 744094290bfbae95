package pagecache

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pos-client/models"
)

func brands(ids ...int64) []models.Brand {
	out := make([]models.Brand, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Brand{BrandID: id, Name: "b"})
	}
	return out
}

func ids(records []models.Brand) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.BrandID)
	}
	return out
}

func TestCache_GetSet(t *testing.T) {
	c := New[models.Brand](0)

	_, ok := c.Get(0)
	assert.False(t, ok)

	c.Set(0, brands(1, 2, 3))
	got, ok := c.Get(0)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3}, ids(got))

	c.Set(0, brands(4))
	got, _ = c.Get(0)
	assert.Equal(t, []int64{4}, ids(got))

	c.Set(3, nil)
	got, ok = c.Get(3)
	assert.True(t, ok, "an empty page is still a cached page")
	assert.Empty(t, got)
}

func TestCache_GetReturnsCopy(t *testing.T) {
	c := New[models.Brand](0)
	c.Set(0, brands(1, 2))

	got, _ := c.Get(0)
	got[0].BrandID = 99

	again, _ := c.Get(0)
	assert.Equal(t, []int64{1, 2}, ids(again))
}

// TestCache_BoundKeepsLargestKeys inserts 0..14 and expects 5..14 to remain.
func TestCache_BoundKeepsLargestKeys(t *testing.T) {
	c := New[models.Brand](DefaultMaxPages)
	for page := 0; page < 15; page++ {
		c.Set(page, brands(int64(page)))
		assert.LessOrEqual(t, c.Len(), DefaultMaxPages)
	}
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, c.Keys())
}

// TestCache_BoundRandomOrder checks the bound and the retained set for
// insertion sequences in random order with repeats.
func TestCache_BoundRandomOrder(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for round := 0; round < 50; round++ {
		c := New[models.Brand](DefaultMaxPages)
		inserted := map[int]bool{}
		for i := 0; i < 40; i++ {
			page := r.Intn(30)
			c.Set(page, brands(int64(page)))
			inserted[page] = true
			require.LessOrEqual(t, c.Len(), DefaultMaxPages)
		}

		var all []int
		for p := range inserted {
			all = append(all, p)
		}
		keys := c.Keys()
		// every key present must be at least as large as every evicted key
		for _, p := range all {
			if _, ok := c.Get(p); !ok {
				assert.Less(t, p, keys[0])
			}
		}
	}
}

func TestCache_SmallerKeyInsertedLastIsEvicted(t *testing.T) {
	c := New[models.Brand](2)
	c.Set(5, brands(5))
	c.Set(6, brands(6))
	c.Set(1, brands(1))

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, []int{5, 6}, c.Keys())
}

func TestCache_InvalidateAll(t *testing.T) {
	c := New[models.Brand](0)
	c.Set(0, brands(1))
	c.Set(1, brands(2))

	c.InvalidateAll()

	assert.Zero(t, c.Len())
	_, ok := c.Get(0)
	assert.False(t, ok)
}

func TestCache_PatchRecord(t *testing.T) {
	c := New[models.Brand](0)
	c.Set(0, brands(1, 2, 3))

	t.Run("replace", func(t *testing.T) {
		repl := models.Brand{BrandID: 2, Name: "renamed"}
		require.True(t, c.PatchRecord(0, 2, &repl))
		got, _ := c.Get(0)
		assert.Equal(t, "renamed", got[1].Name)
	})

	t.Run("remove", func(t *testing.T) {
		require.True(t, c.PatchRecord(0, 1, nil))
		got, _ := c.Get(0)
		assert.Equal(t, []int64{2, 3}, ids(got))
	})

	t.Run("missing id", func(t *testing.T) {
		assert.False(t, c.PatchRecord(0, 42, nil))
	})

	t.Run("missing page", func(t *testing.T) {
		assert.False(t, c.PatchRecord(7, 2, nil))
	})
}

func TestCache_ReplaceRecord(t *testing.T) {
	c := New[models.Brand](0)
	c.Set(0, brands(1, 2))
	c.Set(4, brands(9, 10))

	page, ok := c.ReplaceRecord(models.Brand{BrandID: 10, Name: "x"})
	require.True(t, ok)
	assert.Equal(t, 4, page)
	got, _ := c.Get(4)
	assert.Equal(t, "x", got[1].Name)

	_, ok = c.ReplaceRecord(models.Brand{BrandID: 77})
	assert.False(t, ok)
	assert.Equal(t, []int{0, 4}, c.Keys())
}

func TestCache_Prepend(t *testing.T) {
	c := New[models.Brand](0)
	c.Set(0, brands(1, 2, 3))

	c.Prepend(0, models.Brand{BrandID: 100}, 3)

	got, _ := c.Get(0)
	assert.Equal(t, []int64{100, 1, 2}, ids(got))

	c.Prepend(5, models.Brand{BrandID: 7}, 3)
	got, ok := c.Get(5)
	require.True(t, ok)
	assert.Equal(t, []int64{7}, ids(got))
}
