package artwork

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ReferencedArtworks lists the distinct artwork IDs currently referenced by
// any place. Implemented by the place repository.
type ReferencedArtworks interface {
	DistinctArtworkIDs(ctx context.Context) ([]int64, error)
}

// Refresher periodically re-validates every artwork referenced by a place,
// re-populating the cache before entries expire. Failures are logged and the
// stale entry simply ages out.
type Refresher struct {
	cache  *Cache
	places ReferencedArtworks
	cron   *cron.Cron
	spec   string
}

func NewRefresher(cache *Cache, places ReferencedArtworks, cronSpec string) *Refresher {
	return &Refresher{
		cache:  cache,
		places: places,
		cron:   cron.New(),
		spec:   cronSpec,
	}
}

// Start schedules the refresh job. The returned error only reflects an
// invalid cron spec.
func (r *Refresher) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.RefreshAll); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *Refresher) Stop() {
	r.cron.Stop()
}

// RefreshAll runs one refresh pass over all referenced artworks.
func (r *Refresher) RefreshAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ids, err := r.places.DistinctArtworkIDs(ctx)
	if err != nil {
		log.Printf("[error] operation=artwork_refresh error=%v", err)
		return
	}

	refreshed := 0
	for _, id := range ids {
		if _, err := r.cache.Refresh(ctx, id); err != nil {
			log.Printf("[warn] operation=artwork_refresh artwork_id=%d error=%v", id, err)
			continue
		}
		refreshed++
	}
	log.Printf("[info] operation=artwork_refresh refreshed=%d total=%d", refreshed, len(ids))
}
