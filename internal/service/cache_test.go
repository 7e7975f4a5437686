package service

import (
	"errors"
	"fmt"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestIsCacheMiss(t *testing.T) {
	assert.True(t, isCacheMiss(goredis.Nil))
	assert.True(t, isCacheMiss(fmt.Errorf("lookup failed: %w", goredis.Nil)))

	// real failures must not be classified as misses
	assert.False(t, isCacheMiss(errors.New("dial tcp: connection refused")))
	assert.False(t, isCacheMiss(nil))
}
