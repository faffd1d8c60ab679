package datakit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AppendAndFind(t *testing.T) {
	l := NewList[int]()

	for i := 0; i < 5; i++ {
		l.Append(i)
	}

	require.Equal(t, 5, l.Len())

	node, ok := l.Find(3)
	require.True(t, ok)
	assert.Equal(t, 3, node.Value)

	_, ok = l.Find(42)
	assert.False(t, ok)
}

func TestList_Remove(t *testing.T) {
	l := NewList[int]()
	for i := 0; i < 5; i++ {
		l.Append(i)
	}

	require.NoError(t, l.Remove(2))
	require.Equal(t, 4, l.Len())

	_, ok := l.Find(2)
	assert.False(t, ok)

	assert.ErrorIs(t, l.Remove(2), ErrNotFound)

	// Remaining elements keep their order.
	var got []int
	for n := l.Front(); n != nil; n = n.Next() {
		got = append(got, n.Value)
	}
	assert.Equal(t, []int{0, 1, 3, 4}, got)
}

func TestList_RemoveHeadAndTail(t *testing.T) {
	l := NewList[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)

	require.NoError(t, l.Remove(1))
	require.NoError(t, l.Remove(3))
	require.Equal(t, 1, l.Len())

	// Tail is consistent after removing the old tail.
	l.Append(4)
	var got []int
	for n := l.Front(); n != nil; n = n.Next() {
		got = append(got, n.Value)
	}
	require.Equal(t, []int{2, 4}, got)
}

func TestList_RemoveSoleNode(t *testing.T) {
	l := NewList[int]()
	l.Append(9)

	require.NoError(t, l.Remove(9))
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.Front())

	// Appending after emptying works from a clean state.
	l.Append(10)
	require.Equal(t, 1, l.Len())
}

func TestList_WithEquals(t *testing.T) {
	l := NewList(WithEquals[string](strings.EqualFold))

	l.Append("Hello")
	l.Append("World")

	node, ok := l.Find("HELLO")
	require.True(t, ok)
	assert.Equal(t, "Hello", node.Value)

	require.NoError(t, l.Remove("world"))
	require.Equal(t, 1, l.Len())
}

func TestList_ReleaseCallback(t *testing.T) {
	released := make(map[int]int)
	l := NewList(WithRelease[int](func(v int) {
		released[v]++
	}))

	for i := 0; i < 4; i++ {
		l.Append(i)
	}

	// Release fires exactly once per removed value, never on survivors.
	require.NoError(t, l.Remove(1))
	require.Equal(t, map[int]int{1: 1}, released)

	l.Clear()
	require.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1}, released)
	require.Equal(t, 0, l.Len())
}
