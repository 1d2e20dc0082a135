package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_Disabled(t *testing.T) {
	ctx := context.Background()

	for name, c := range map[string]*Client{
		"nil client":    nil,
		"empty address": New("", "", 0),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, c.Enabled())
			assert.NoError(t, c.Ping(ctx))
			assert.ErrorIs(t, c.Set(ctx, "k", []byte("v"), time.Minute), ErrDisabled)

			v, err := c.Get(ctx, "k")
			assert.NoError(t, err)
			assert.Nil(t, v)

			assert.NoError(t, c.Close())
		})
	}
}

func TestClient_UnreachableReadsMissWritesFail(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	assert.True(t, c.Enabled())
	assert.Error(t, c.Ping(ctx))

	err := c.Set(ctx, "k", []byte("v"), time.Minute)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDisabled)

	v, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, v)
}
