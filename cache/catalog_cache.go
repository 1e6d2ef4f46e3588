package catalog_cache

import (
	"sync"
	"time"

	"github.com/Migueeel08/focoshop-sub000/models"
)

const TTL = 5 * time.Minute

// ── Catalog snapshot cache ───────────────────────────────────────────────────
// The full upstream catalog, fetched once per view-session window. The filter
// pipeline always runs against this snapshot; handlers repopulate it on a miss.

type snapshotEntry struct {
	items     []models.Product
	fetchedAt time.Time
}

var (
	snapMu    sync.RWMutex
	snapCache *snapshotEntry
)

func Get() ([]models.Product, bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if snapCache != nil && time.Since(snapCache.fetchedAt) < TTL {
		return snapCache.items, true
	}
	return nil, false
}

func Set(items []models.Product) {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapCache = &snapshotEntry{items: items, fetchedAt: time.Now()}
}

// ── Invalidate (call on any seller product create/update/delete) ─────────────

func Invalidate() {
	snapMu.Lock()
	snapCache = nil
	snapMu.Unlock()
}
