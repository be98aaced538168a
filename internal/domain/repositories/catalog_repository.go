package repositories

import (
	"context"

	"github.com/saiisback/capy/internal/domain/entities"
)

// CatalogRepository persists the marketplace catalog. The on-chain view is
// authoritative for availability; the catalog supplies display metadata the
// contract does not store.
type CatalogRepository interface {
	GetByID(ctx context.Context, id uint64) (*entities.MarketplaceItem, error)
	List(ctx context.Context) ([]entities.MarketplaceItem, error)
	// ListAvailable lists items for sale, optionally restricted to one
	// category. An empty category matches everything.
	ListAvailable(ctx context.Context, category string) ([]entities.MarketplaceItem, error)
	Upsert(ctx context.Context, item *entities.MarketplaceItem) error
	SetAvailability(ctx context.Context, id uint64, available bool) error
	Count(ctx context.Context) (int64, error)
}
