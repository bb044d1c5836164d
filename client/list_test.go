package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFetchCycle(t *testing.T) {
	var l List[string]

	l.Begin()
	assert.True(t, l.Loading)

	l.End([]string{"a", "b"}, nil)
	assert.False(t, l.Loading)
	assert.Equal(t, []string{"a", "b"}, l.Items)

	// A failed refetch keeps the stale items for retry.
	l.Begin()
	l.End(nil, errors.New("network down"))
	assert.Error(t, l.Err)
	assert.Equal(t, []string{"a", "b"}, l.Items)

	// The next Begin clears the error.
	l.Begin()
	assert.NoError(t, l.Err)
}

func TestListReconciliation(t *testing.T) {
	l := List[string]{Items: []string{"b", "c"}}

	l.Prepend("a")
	assert.Equal(t, []string{"a", "b", "c"}, l.Items)

	l.Replace(func(s string) bool { return s == "b" }, "B")
	assert.Equal(t, []string{"a", "B", "c"}, l.Items)

	l.Replace(func(s string) bool { return s == "missing" }, "X")
	assert.Equal(t, []string{"a", "B", "c"}, l.Items, "no match leaves the list alone")

	l.Remove(func(s string) bool { return s == "a" })
	assert.Equal(t, []string{"B", "c"}, l.Items)
}

func TestTokenStoreRoundTrip(t *testing.T) {
	store, err := NewTokenStore(t.TempDir())
	assert.NoError(t, err)

	token, err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, token, "a fresh store holds no token")

	assert.NoError(t, store.Save("issued-token"))

	token, err = store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "issued-token", token)

	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear(), "clearing twice is fine")

	token, err = store.Load()
	assert.NoError(t, err)
	assert.Empty(t, token)
}
