package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asentar-dev/asentar/internal/model"
)

func TestScoreCache_SetGet(t *testing.T) {
	cache := newScoreCache(time.Minute)
	defer cache.Close()

	scores := model.Scores{
		{Code: "51101", Value: 0.9},
		{Code: "11102", Value: 0.7},
	}

	_, found := cache.get("pago de sueldos")
	assert.False(t, found)

	cache.set("pago de sueldos", scores)

	got, found := cache.get("pago de sueldos")
	require.True(t, found)
	assert.Equal(t, scores, got)
	assert.Equal(t, 1, cache.size())
}

func TestScoreCache_Expiry(t *testing.T) {
	cache := newScoreCache(10 * time.Millisecond)
	defer cache.Close()

	cache.set("pago de sueldos", model.Scores{{Code: "51101", Value: 0.9}})

	time.Sleep(20 * time.Millisecond)

	_, found := cache.get("pago de sueldos")
	assert.False(t, found)
}

func TestScoreCache_DefaultTTL(t *testing.T) {
	cache := newScoreCache(0)
	defer cache.Close()

	assert.Equal(t, 15*time.Minute, cache.ttl)
}
