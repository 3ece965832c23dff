package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/config"
)

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + server.Addr() + "/0", DB: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, 2, client.Options().DB)
	assert.NoError(t, Ping(client)(context.Background()))

	server.Close()
	assert.Error(t, Ping(client)(context.Background()))
}

func TestNewRedisClient_Errors(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "malformed url", url: "http://nope", want: "invalid redis url"},
		{name: "unreachable server", url: "redis://127.0.0.1:1/0", want: "failed to ping redis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewRedisClient(&config.RedisConfig{URL: tt.url})

			assert.Nil(t, client)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
