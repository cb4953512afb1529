package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(client, "test"), mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	err := c.Set(ctx, "thread:1", payload{Name: "hello", Count: 3}, time.Minute)
	require.NoError(t, err)

	var got payload
	hit, err := c.Get(ctx, "thread:1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "hello", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestCache_Get_Miss(t *testing.T) {
	c, _ := setupCache(t)

	var got payload
	hit, err := c.Get(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_Delete(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "thread:1", payload{Name: "hello"}, time.Minute))
	require.NoError(t, c.Delete(ctx, "thread:1"))

	var got payload
	hit, err := c.Get(ctx, "thread:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_KeysArePrefixed(t *testing.T) {
	c, mr := setupCache(t)

	require.NoError(t, c.Set(context.Background(), "thread:1", payload{}, time.Minute))
	assert.True(t, mr.Exists("test:thread:1"))
}

func TestCache_TTLExpires(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "thread:1", payload{Name: "hello"}, time.Minute))

	mr.FastForward(2 * time.Minute)

	var got payload
	hit, err := c.Get(ctx, "thread:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_Get_CorruptValue(t *testing.T) {
	c, mr := setupCache(t)

	require.NoError(t, mr.Set("test:thread:1", "{not json"))

	var got payload
	hit, err := c.Get(context.Background(), "thread:1", &got)
	assert.Error(t, err)
	assert.False(t, hit)
}
