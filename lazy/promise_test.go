package lazy_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/ranked-belief/lazy"
)

func TestDeferDoesNotInvoke(t *testing.T) {
	var calls atomic.Int32
	p := lazy.Defer(func() (int, error) {
		calls.Add(1)
		return 7, nil
	})

	assert.Equal(t, int32(0), calls.Load())
	assert.False(t, p.Forced())
}

func TestForceMemoizesValue(t *testing.T) {
	var calls atomic.Int32
	p := lazy.Defer(func() (int, error) {
		calls.Add(1)
		return 7, nil
	})

	v, err := p.Force()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, p.Forced())

	v, err = p.Force()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, int32(1), calls.Load())
}

func TestForceMemoizesError(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32
	p := lazy.Defer(func() (int, error) {
		calls.Add(1)
		return 0, boom
	})

	_, err := p.Force()
	assert.ErrorIs(t, err, boom)

	_, err = p.Force()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), calls.Load())
}

func TestResolved(t *testing.T) {
	p := lazy.Resolved("hello")
	assert.True(t, p.Forced())

	v, err := p.Force()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestSharedHoldersSeeOneTransition(t *testing.T) {
	var calls atomic.Int32
	p := lazy.Defer(func() (int, error) {
		calls.Add(1)
		return 42, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := p.Force()
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}
