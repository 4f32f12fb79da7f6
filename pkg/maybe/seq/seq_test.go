package seq

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/maybe/pkg/maybe"
)

func ptr(s string) *string {
	return &s
}

func TestDo_SkipsNilElements(t *testing.T) {
	t.Parallel()

	var seen []string
	src := slices.Values([]*string{ptr("a"), nil, ptr("c")})
	out := Do(src, func(s *string) { seen = append(seen, *s) })

	assert.Equal(t, []string{"a", "c"}, seen)
	assert.NotNil(t, out)
}

func TestDo_NilSequence(t *testing.T) {
	t.Parallel()

	var src iter.Seq[*string]
	assert.Nil(t, Do(src, func(*string) { t.Fatal("must not run") }))
	assert.Nil(t, DoIndexed(src, func(*string, int) { t.Fatal("must not run") }))
}

func TestDoIndexed_CountsSkipped(t *testing.T) {
	t.Parallel()

	var idx []int
	DoIndexed(slices.Values([]*string{nil, ptr("b"), nil, ptr("d")}), func(_ *string, i int) {
		idx = append(idx, i)
	})
	assert.Equal(t, []int{1, 3}, idx)
}

func TestWith_PreservesLength(t *testing.T) {
	t.Parallel()

	src := slices.Values([]*string{ptr("x1"), nil, ptr("x3")})
	out := slices.Collect(With(src, func(s *string) string { return strings.ToUpper(*s) }))
	assert.Equal(t, []string{"X1", "", "X3"}, out)
}

func TestWith_IsLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	mapped := With(slices.Values([]*string{ptr("a"), ptr("b")}), func(s *string) string {
		calls++
		return *s
	})
	assert.Zero(t, calls)

	for range mapped {
		break
	}
	assert.Equal(t, 1, calls)
}

func TestWith_NilSequenceIsEmpty(t *testing.T) {
	t.Parallel()

	var src iter.Seq[*string]
	out := With(src, func(s *string) int { return len(*s) })
	assert.NotNil(t, out)
	assert.Empty(t, slices.Collect(out))
	assert.Empty(t, slices.Collect(WithIndexed(src, func(s *string, i int) int { return i })))
}

func TestWithIndexed(t *testing.T) {
	t.Parallel()

	src := slices.Values([]*string{ptr("a"), nil, ptr("c")})
	out := slices.Collect(WithIndexed(src, func(s *string, i int) string {
		return strings.Repeat(*s, i+1)
	}))
	assert.Equal(t, []string{"a", "", "ccc"}, out)
}

func TestOptionSequences(t *testing.T) {
	t.Parallel()

	src := slices.Values([]maybe.Option[int]{maybe.Some(1), maybe.None[int](), maybe.Some(3)})

	sum := 0
	DoOptions(src, func(v int) { sum += v })
	assert.Equal(t, 4, sum)

	var idx []int
	DoOptionsIndexed(src, func(_ int, i int) { idx = append(idx, i) })
	assert.Equal(t, []int{0, 2}, idx)

	assert.Equal(t, []int{2, 0, 6}, slices.Collect(WithOptions(src, func(v int) int { return v * 2 })))
	assert.Equal(t, []int{1, 0, 5}, slices.Collect(WithOptionsIndexed(src, func(v, i int) int { return v + i })))

	var absent iter.Seq[maybe.Option[int]]
	assert.Nil(t, DoOptions(absent, func(int) { t.Fatal("must not run") }))
	assert.Empty(t, slices.Collect(WithOptions(absent, func(v int) int { return v })))
}
