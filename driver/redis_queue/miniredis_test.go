package redis_queue

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func newMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return mr
}

func setupTestDriver(t *testing.T, maxLen int64) (*RedisDriver, *miniredis.Miniredis) {
	t.Helper()

	mr := newMiniredis(t)
	driver, err := NewRedisDriverWithURL("redis://"+mr.Addr(), maxLen)
	if err != nil {
		t.Fatalf("failed to create driver: %v", err)
	}
	t.Cleanup(func() { _ = driver.Close() })

	return driver, mr
}
