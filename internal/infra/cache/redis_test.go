package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercearia/backend/config"
)

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	r, err := NewRedis(&config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	assert.NoError(t, r.Ping(context.Background()))
	assert.True(t, r.HealthCheck())

	mr.Close()
	assert.False(t, r.HealthCheck())
}

func TestNewRedisInvalidURL(t *testing.T) {
	_, err := NewRedis(&config.RedisConfig{URL: "://nope"})
	assert.Error(t, err)
}

func TestNilRedis(t *testing.T) {
	var r *Redis
	assert.Error(t, r.Ping(context.Background()))
	assert.NoError(t, r.Close())
}
