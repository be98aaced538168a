package repositories

import (
	"context"
	"errors"

	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/internal/domain/repositories"
	"github.com/saiisback/capy/internal/infrastructure/models"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// catalogRepo implements repositories.CatalogRepository
type catalogRepo struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) repositories.CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) GetByID(ctx context.Context, id uint64) (*entities.MarketplaceItem, error) {
	var m models.CatalogItem
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *catalogRepo) List(ctx context.Context) ([]entities.MarketplaceItem, error) {
	var rows []models.CatalogItem
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toEntities(rows), nil
}

func (r *catalogRepo) ListAvailable(ctx context.Context, category string) ([]entities.MarketplaceItem, error) {
	query := r.db.WithContext(ctx).Where("available = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var rows []models.CatalogItem
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toEntities(rows), nil
}

func (r *catalogRepo) Upsert(ctx context.Context, item *entities.MarketplaceItem) error {
	m := r.toModel(item)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *catalogRepo) SetAvailability(ctx context.Context, id uint64, available bool) error {
	result := r.db.WithContext(ctx).Model(&models.CatalogItem{}).
		Where("id = ?", id).
		Update("available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *catalogRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CatalogItem{}).Count(&count).Error
	return count, err
}

func (r *catalogRepo) toEntity(m *models.CatalogItem) *entities.MarketplaceItem {
	return &entities.MarketplaceItem{
		ID:          m.ID,
		Slug:        m.Slug,
		Name:        m.Name,
		Description: null.NewString(m.Description, m.Description != ""),
		ItemType:    entities.ItemType(m.ItemType),
		Category:    m.Category,
		Rarity:      entities.Rarity(m.Rarity),
		Price:       m.Price,
		ImageURL:    null.NewString(m.ImageURL, m.ImageURL != ""),
		Available:   m.Available,
	}
}

func (r *catalogRepo) toEntities(rows []models.CatalogItem) []entities.MarketplaceItem {
	items := make([]entities.MarketplaceItem, 0, len(rows))
	for i := range rows {
		items = append(items, *r.toEntity(&rows[i]))
	}
	return items
}

func (r *catalogRepo) toModel(e *entities.MarketplaceItem) *models.CatalogItem {
	return &models.CatalogItem{
		ID:          e.ID,
		Slug:        e.Slug,
		Name:        e.Name,
		Description: e.Description.String,
		ItemType:    uint8(e.ItemType),
		Category:    e.Category,
		Rarity:      string(e.Rarity),
		Price:       e.Price,
		ImageURL:    e.ImageURL.String,
		Available:   e.Available,
	}
}
