package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferred_ResolveOnce(t *testing.T) {
	d := NewDeferred[int]()

	_, _, settled := d.Settled()
	assert.False(t, settled)

	assert.True(t, d.Resolve(7))
	assert.False(t, d.Resolve(8))
	assert.False(t, d.Fail())

	v, ok, settled := d.Settled()
	assert.True(t, settled)
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestDeferred_Fail(t *testing.T) {
	d := NewDeferred[string]()

	assert.True(t, d.Fail())
	assert.False(t, d.Resolve("late"))

	v, ok, err := d.Wait(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestDeferred_WaitCanceled(t *testing.T) {
	d := NewDeferred[int]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := d.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// The producer is unaffected by a waiter giving up.
	assert.True(t, d.Resolve(1))
}

func TestDeferred_WaitTimeout(t *testing.T) {
	t.Run("budget runs out", func(t *testing.T) {
		d := NewDeferred[int]()

		_, _, settled := d.WaitTimeout(context.Background(), 5*time.Millisecond)
		assert.False(t, settled)
	})

	t.Run("settles within budget", func(t *testing.T) {
		d := NewDeferred[int]()

		go func() {
			time.Sleep(5 * time.Millisecond)
			d.Resolve(3)
		}()

		v, ok, settled := d.WaitTimeout(context.Background(), time.Second)
		assert.True(t, settled)
		assert.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("zero budget inspects current state", func(t *testing.T) {
		d := NewDeferred[int]()

		_, _, settled := d.WaitTimeout(context.Background(), 0)
		assert.False(t, settled)

		d.Resolve(9)

		v, ok, settled := d.WaitTimeout(context.Background(), 0)
		assert.True(t, settled)
		assert.True(t, ok)
		assert.Equal(t, 9, v)
	})
}
