package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJitterTTL(t *testing.T) {
	assert.Equal(t, time.Duration(0), jitterTTL(0))

	base := 10 * time.Minute
	for i := 0; i < 100; i++ {
		got := jitterTTL(base)
		assert.GreaterOrEqual(t, got, 9*time.Minute)
		assert.LessOrEqual(t, got, 11*time.Minute)
	}
}

func TestFullKeyPrefix(t *testing.T) {
	c := &redisCache{prefix: "riskintel:"}
	assert.Equal(t, "riskintel:assessment:ENT-1", c.fullKey("assessment:ENT-1"))
}

func TestJSONSerializerRoundTrip(t *testing.T) {
	s := jsonSerializer{}
	type payload struct {
		ID    string  `json:"id"`
		Score float64 `json:"score"`
	}
	data, err := s.Marshal(payload{ID: "ENT-1", Score: 72.5})
	require.NoError(t, err)

	var out payload
	require.NoError(t, s.Unmarshal(data, &out))
	assert.Equal(t, "ENT-1", out.ID)
	assert.Equal(t, 72.5, out.Score)
}

func TestCacheOptions(t *testing.T) {
	c := NewCache(nil, nil, WithPrefix("x:"), WithDefaultTTL(time.Minute)).(*redisCache)
	assert.Equal(t, "x:", c.prefix)
	assert.Equal(t, time.Minute, c.defaultTTL)
}
