package idgen

import (
	"strings"
	"sync"
	"testing"

	"rewards/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumberGenerator(t *testing.T) {
	_, err := NewOrderNumberGenerator(&config.Config{})
	require.NoError(t, err)

	_, err = NewOrderNumberGenerator(&config.Config{Snowflake: &config.SnowflakeConfig{NodeID: 5000}})
	assert.Error(t, err)
}

func TestSnowflakeGenerator_NextOrderNo(t *testing.T) {
	gen, err := NewOrderNumberGenerator(&config.Config{Snowflake: &config.SnowflakeConfig{NodeID: 7}})
	require.NoError(t, err)

	const workers, perWorker = 8, 250

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				orderNo := gen.NextOrderNo()
				mu.Lock()
				seen[orderNo] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	for orderNo := range seen {
		assert.True(t, strings.HasPrefix(orderNo, "ORD"))
		assert.LessOrEqual(t, len(orderNo), 32)
	}
}
