package main

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"strconv"

	"github.com/cockroachdb/pebble"
)

// suggestion is the persisted form of one ranked correction.
type suggestion struct {
	Word string
	Rank int64
}

// suggestionCache keeps spelling suggestions in a local Pebble database so
// repeated lookups skip the pattern search entirely.
type suggestionCache struct {
	db *pebble.DB
}

func openSuggestionCache(dir string) (*suggestionCache, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("opening suggestion cache: %w", err)
	}
	return &suggestionCache{db: db}, nil
}

func (c *suggestionCache) Close() error {
	return c.db.Close()
}

// cacheKey includes the requested limit so that a run asking for more
// suggestions misses instead of being served a shorter cached list.
func cacheKey(word string, limit int) []byte {
	return []byte(word + "#" + strconv.Itoa(limit))
}

// Get returns the cached suggestions for word, if present.
func (c *suggestionCache) Get(word string, limit int) ([]suggestion, bool, error) {
	value, closer, err := c.db.Get(cacheKey(word, limit))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading suggestion cache: %w", err)
	}
	defer closer.Close()

	var cached []suggestion
	if err := gob.NewDecoder(bytes.NewReader(value)).Decode(&cached); err != nil {
		return nil, false, fmt.Errorf("decoding cached suggestions: %w", err)
	}
	return cached, true, nil
}

// Put stores the suggestions computed for word.
func (c *suggestionCache) Put(word string, limit int, suggestions []suggestion) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(suggestions); err != nil {
		return fmt.Errorf("encoding suggestions: %w", err)
	}
	if err := c.db.Set(cacheKey(word, limit), buf.Bytes(), pebble.Sync); err != nil {
		return fmt.Errorf("writing suggestion cache: %w", err)
	}
	return nil
}
