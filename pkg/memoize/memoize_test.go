package memoize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDo_CachesPerArgumentSignature(t *testing.T) {
	var c Cache
	computations := 0
	square := func(n int) int {
		computations++
		return n * n
	}

	first := Do(&c, "square", func() int { return square(3) }, 3)
	second := Do(&c, "square", func() int { return square(3) }, 3)
	third := Do(&c, "square", func() int { return square(4) }, 4)

	assert.Equal(t, 9, first)
	assert.Equal(t, 9, second)
	assert.Equal(t, 16, third)
	assert.Equal(t, 2, computations)
	assert.Equal(t, 2, c.Len())
}

func TestDo_ZeroValueCacheIsReady(t *testing.T) {
	var c Cache

	assert.Equal(t, 0, c.Len())
	result := Do(&c, "answer", func() int { return 42 })
	assert.Equal(t, 42, result)
	assert.Equal(t, 1, c.Len())
}

func TestDo_DistinctFunctionNamesDoNotCollide(t *testing.T) {
	var c Cache

	a := Do(&c, "a", func() string { return "from a" }, 1)
	b := Do(&c, "b", func() string { return "from b" }, 1)

	assert.Equal(t, "from a", a)
	assert.Equal(t, "from b", b)
	assert.Equal(t, 2, c.Len())
}

func TestDo_IdenticalStringificationSharesEntry(t *testing.T) {
	var c Cache
	computations := 0

	// int 1 and string "1" stringify identically; the lossy key scheme
	// makes them share one entry
	first := Do(&c, "render", func() string {
		computations++
		return "computed for int"
	}, 1)
	second := Do(&c, "render", func() string {
		computations++
		return "computed for string"
	}, "1")

	assert.Equal(t, "computed for int", first)
	assert.Equal(t, "computed for int", second)
	assert.Equal(t, 1, computations)
	assert.Equal(t, 1, c.Len())
}

func TestKey_StructRendersExportedFieldMapping(t *testing.T) {
	type user struct {
		Name string
		Age  int
	}

	key := Key(user{Name: "bob", Age: 30})
	assert.Equal(t, fmt.Sprint(map[string]any{"Name": "bob", "Age": 30}), key)

	// a pointer to the same struct produces the same key
	assert.Equal(t, key, Key(&user{Name: "bob", Age: 30}))
}

func TestKey_SkipsUnexportedFields(t *testing.T) {
	type payload struct {
		Visible string
		hidden  int
	}

	a := Key(payload{Visible: "x", hidden: 1})
	b := Key(payload{Visible: "x", hidden: 2})
	assert.Equal(t, a, b)
}

func TestKey_ConcatenatesArguments(t *testing.T) {
	assert.Equal(t, "1two3", Key(1, "two", 3))
	assert.Equal(t, "", Key())
	assert.Equal(t, "<nil>", Key(nil))
}

func TestFunc1(t *testing.T) {
	computations := 0
	cached := Func1("double", func(n int) int {
		computations++
		return n * 2
	})

	assert.Equal(t, 4, cached(2))
	assert.Equal(t, 4, cached(2))
	assert.Equal(t, 6, cached(3))
	assert.Equal(t, 2, computations)
}

func TestFunc2(t *testing.T) {
	computations := 0
	cached := Func2("concat", func(a, b string) string {
		computations++
		return a + b
	})

	assert.Equal(t, "ab", cached("a", "b"))
	assert.Equal(t, "ab", cached("a", "b"))
	assert.Equal(t, 1, computations)
}

func TestWithCapacity_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(WithCapacity(1))
	computations := 0
	compute := func(n int) func() int {
		return func() int {
			computations++
			return n
		}
	}

	Do(c, "id", compute(1), 1)
	Do(c, "id", compute(2), 2) // evicts the entry for 1
	Do(c, "id", compute(1), 1) // recomputed

	assert.Equal(t, 3, computations)
	assert.Equal(t, 1, c.Len())
}

func TestCache_Flush(t *testing.T) {
	var c Cache
	Do(&c, "x", func() int { return 1 }, 1)
	Do(&c, "x", func() int { return 2 }, 2)
	assert.Equal(t, 2, c.Len())

	c.Flush()
	assert.Equal(t, 0, c.Len())

	computations := 0
	Do(&c, "x", func() int { computations++; return 1 }, 1)
	assert.Equal(t, 1, computations)
}
