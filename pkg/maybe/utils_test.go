package maybe

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var s []int
	var f func()
	var c chan int
	var e error

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(f))
	assert.True(t, IsNil(c))
	assert.True(t, IsNil(e))

	x := 0
	assert.False(t, IsNil(&x))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
	assert.False(t, IsNil(struct{}{}))
}

func TestGetErrorsAndJoin(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{io.EOF}, GetErrors(io.EOF))

	err := JoinErrors(nil, io.EOF)
	err = JoinErrors(err, io.ErrUnexpectedEOF)
	err = JoinErrors(err, nil)

	parts := GetErrors(err)
	assert.Len(t, parts, 2)
	assert.True(t, errors.Is(err, io.EOF))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}
