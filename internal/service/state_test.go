package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_FailKeepsItems(t *testing.T) {
	s := NewState[string]()

	s.Begin()
	assert.True(t, s.IsLoading())

	s.Complete([]string{"a", "b"})
	assert.False(t, s.IsLoading())
	assert.NoError(t, s.LastError())
	assert.Equal(t, []string{"a", "b"}, s.Items())

	s.Begin()
	assert.NoError(t, s.LastError())

	s.Fail(errors.New("boom"))
	assert.False(t, s.IsLoading())
	assert.Error(t, s.LastError())
	assert.Equal(t, []string{"a", "b"}, s.Items(), "failed refresh must not clear previous items")
}

func TestState_CompleteReplacesWholesale(t *testing.T) {
	s := NewState[int]()
	s.Complete([]int{1, 2, 3})
	s.Complete([]int{4})
	assert.Equal(t, []int{4}, s.Items())

	s.Complete(nil)
	assert.Empty(t, s.Items())
}

func TestState_ItemsReturnsCopy(t *testing.T) {
	s := NewState[int]()
	s.Complete([]int{1, 2})

	items := s.Items()
	items[0] = 99
	assert.Equal(t, []int{1, 2}, s.Items())
}
