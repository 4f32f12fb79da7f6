package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/maybe/pkg/maybe"
)

func TestDo(t *testing.T) {
	t.Parallel()

	seen := map[int]string{}
	src := map[int]string{1: "a", 2: "b"}
	out := Do(src, func(k int, v string) { seen[k] = v })
	assert.Equal(t, src, seen)
	assert.Equal(t, src, out)

	var absent map[int]string
	assert.Nil(t, Do(absent, func(int, string) { t.Fatal("must not run") }))
}

func TestDoSorted(t *testing.T) {
	t.Parallel()

	var keys []string
	DoSorted(map[string]int{"c": 3, "a": 1, "b": 2}, func(k string, _ int) { keys = append(keys, k) })
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	var absent map[string]int
	assert.Nil(t, DoSorted(absent, func(string, int) { t.Fatal("must not run") }))
}

func TestWithAndReturn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "b", With(map[int]string{1: "a", 2: "b"}, 2))
	assert.Equal(t, "", With(map[int]string{1: "a"}, 5))
	assert.Equal(t, "d", Return(map[int]string{1: "a"}, 5, "d"))
	assert.Equal(t, "a", Return(map[int]string{1: "a"}, 1, "d"))

	var absent map[int]string
	assert.Equal(t, "", With(absent, 1))
	assert.Equal(t, "d", Return(absent, 1, "d"))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	src := map[string]int{"zero": 0}
	assert.Equal(t, maybe.Some(0), Lookup(src, "zero"))
	assert.True(t, Lookup(src, "none").IsAbsent())
	assert.True(t, Lookup[string, int](nil, "zero").IsAbsent())
}
