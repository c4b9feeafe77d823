package cache

import (
	"context"
	"testing"
	"time"

	"fitplan/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = value.([]byte)
	f.ttls[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func TestRedisCatalogCache_RoundTrip(t *testing.T) {
	client := newFakeRedis()
	c := newRedisCatalogCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := c.GetExercises(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	exercises := []*entity.Exercise{
		{ID: "ex-1", Name: "Supino", MuscleGroup: "Peito", Instructions: []string{"Deite", "Empurre"}},
	}
	require.NoError(t, c.SetExercises(ctx, exercises))
	assert.Equal(t, time.Minute, client.ttls[KeyCatalogExercises])

	got, ok, err := c.GetExercises(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, exercises, got)
}

func TestRedisCatalogCache_Errors(t *testing.T) {
	ctx := context.Background()

	client := newFakeRedis()
	client.getErr = errors.New("connection refused")
	_, ok, err := newRedisCatalogCache(client, time.Minute).GetExercises(ctx)
	assert.Error(t, err)
	assert.False(t, ok)

	client = newFakeRedis()
	client.values[KeyCatalogExercises] = []byte("{not json")
	_, ok, err = newRedisCatalogCache(client, time.Minute).GetExercises(ctx)
	assert.ErrorContains(t, err, "unmarshal")
	assert.False(t, ok)

	client = newFakeRedis()
	client.setErr = errors.New("readonly")
	assert.Error(t, newRedisCatalogCache(client, time.Minute).SetExercises(ctx, nil))
}

func TestNoopCatalogCache(t *testing.T) {
	var c noopCatalogCache

	exercises, ok, err := c.GetExercises(context.Background())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, exercises)
	assert.NoError(t, c.SetExercises(context.Background(), nil))
}
