package jobs

import (
	"context"
	"log"
	"time"

	"github.com/saiisback/capy/internal/domain/entities"
	"github.com/saiisback/capy/internal/domain/repositories"
)

// marketReader is the on-chain side of the sync.
type marketReader interface {
	MarketplaceItem(ctx context.Context, id uint64) (*entities.MarketplaceItem, error)
}

// CatalogSyncJob reconciles local catalog availability with the on-chain
// marketplace.
type CatalogSyncJob struct {
	repo     repositories.CatalogRepository
	market   marketReader
	interval time.Duration
	stop     chan struct{}
}

func NewCatalogSyncJob(repo repositories.CatalogRepository, market marketReader, interval time.Duration) *CatalogSyncJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CatalogSyncJob{
		repo:     repo,
		market:   market,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *CatalogSyncJob) Start(ctx context.Context) {
	log.Println("🕐 Starting catalog sync job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Catalog sync job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Catalog sync job stopped")
			return
		case <-ticker.C:
			j.syncOnce(ctx)
		}
	}
}

func (j *CatalogSyncJob) Stop() {
	close(j.stop)
}

func (j *CatalogSyncJob) syncOnce(ctx context.Context) {
	items, err := j.repo.List(ctx)
	if err != nil {
		log.Printf("❌ Error listing catalog: %v", err)
		return
	}

	updated := 0
	for _, item := range items {
		onchain, err := j.market.MarketplaceItem(ctx, item.ID)
		if err != nil {
			// The chain stays authoritative; a failed read leaves the row as is.
			continue
		}
		if onchain.Available != item.Available {
			if err := j.repo.SetAvailability(ctx, item.ID, onchain.Available); err != nil {
				log.Printf("❌ Error updating catalog item %d: %v", item.ID, err)
				continue
			}
			updated++
		}
	}

	if updated > 0 {
		log.Printf("✅ Catalog sync updated %d items", updated)
	}
}
