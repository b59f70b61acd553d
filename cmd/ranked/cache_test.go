package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionCacheRoundTrip(t *testing.T) {
	cache, err := openSuggestionCache(t.TempDir())
	require.NoError(t, err)
	defer cache.Close()

	_, ok, err := cache.Get("wird", 5)
	require.NoError(t, err)
	assert.False(t, ok)

	want := []suggestion{{Word: "bird", Rank: 1}, {Word: "word", Rank: 1}}
	require.NoError(t, cache.Put("wird", 5, want))

	got, ok, err := cache.Get("wird", 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSuggestionCacheKeyedByLimit(t *testing.T) {
	cache, err := openSuggestionCache(t.TempDir())
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Put("wird", 1, []suggestion{{Word: "bird", Rank: 1}}))

	_, ok, err := cache.Get("wird", 10)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSuggestionCacheSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	cache, err := openSuggestionCache(dir)
	require.NoError(t, err)
	want := []suggestion{{Word: "hello", Rank: 1}}
	require.NoError(t, cache.Put("hallo", 5, want))
	require.NoError(t, cache.Close())

	reopened, err := openSuggestionCache(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Get("hallo", 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
