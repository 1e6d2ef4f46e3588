package catalog_cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Migueeel08/focoshop-sub000/models"
)

func TestSetGetInvalidate(t *testing.T) {
	t.Cleanup(Invalidate)

	_, ok := Get()
	require.False(t, ok, "empty cache must miss")

	items := []models.Product{{ID: 1, Name: "Laptop"}}
	Set(items)

	got, ok := Get()
	require.True(t, ok)
	assert.Equal(t, items, got)

	Invalidate()
	_, ok = Get()
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	t.Cleanup(Invalidate)

	Set([]models.Product{{ID: 1}})

	snapMu.Lock()
	snapCache.fetchedAt = time.Now().Add(-TTL - time.Second)
	snapMu.Unlock()

	_, ok := Get()
	assert.False(t, ok, "stale snapshot must miss")
}
