package repositories

import (
	"context"

	"github.com/saiisback/capy/internal/domain/entities"
	"github.com/saiisback/capy/internal/domain/repositories"
	"github.com/volatiletech/null/v8"
)

type seedItem struct {
	id       uint64
	slug     string
	name     string
	desc     string
	itemType entities.ItemType
	category string
	rarity   entities.Rarity
	price    uint64
	image    string
}

// The launch catalog. Ids match the on-chain marketplace registration order.
var launchCatalog = []seedItem{
	{1, "cat_food_premium", "Premium Cat Food", "Nutritious and delicious food that makes your pet happy", entities.ItemTypeFood, "food", entities.RarityCommon, 5, "/CatPackPaid/CatItems/CatToys/catfood.png"},
	{2, "fish_deluxe", "Deluxe Fish", "Fresh fish that your pet will love", entities.ItemTypeFood, "food", entities.RarityRare, 8, "/CatPackPaid/CatItems/CatToys/fish.png"},
	{3, "treats_special", "Special Treats", "Rare treats that boost happiness", entities.ItemTypeFood, "food", entities.RarityEpic, 15, "/CatPackPaid/CatItems/CatToys/catfood.png"},
	{4, "ball_blue", "Blue Ball", "A fun blue ball for your pet to play with", entities.ItemTypeToy, "toys", entities.RarityCommon, 3, "/CatPackPaid/CatItems/CatToys/BlueBall.gif"},
	{5, "mouse_toy", "Mouse Toy", "Interactive mouse toy that moves", entities.ItemTypeToy, "toys", entities.RarityRare, 7, "/CatPackPaid/CatItems/CatToys/Mouse.gif"},
	{6, "laser_pointer", "Laser Pointer", "High-tech laser pointer for endless fun", entities.ItemTypeToy, "toys", entities.RarityEpic, 12, "/CatPackPaid/CatItems/CatToys/CatToy.gif"},
	{7, "flower_pot", "Flower Pot", "Beautiful flower pot to decorate your pet's room", entities.ItemTypeDecoration, "decorations", entities.RarityCommon, 4, "/CatPackPaid/CatItems/Decorations/CatRoomDecorations.png"},
	{8, "wall_art", "Wall Art", "Elegant wall art for your pet's space", entities.ItemTypeDecoration, "decorations", entities.RarityRare, 10, "/CatPackPaid/CatItems/Decorations/CatRoomDecorations.png"},
	{9, "cat_bed_blue", "Blue Cat Bed", "Comfortable blue bed for your pet to rest", entities.ItemTypeFurniture, "furniture", entities.RarityCommon, 20, "/CatPackPaid/CatItems/Beds/CatBedBlue.png"},
	{10, "cat_bed_purple", "Purple Cat Bed", "Luxurious purple bed for ultimate comfort", entities.ItemTypeFurniture, "furniture", entities.RarityRare, 35, "/CatPackPaid/CatItems/Beds/CatBedPurple.png"},
	{11, "cat_home", "Cat Home", "A cozy home for your pet to live in", entities.ItemTypeFurniture, "furniture", entities.RarityEpic, 50, "/CatPackPaid/CatItems/Beds/CatHomes.png"},
	{12, "puzzle_game", "Puzzle Game", "Interactive puzzle game to keep your pet entertained", entities.ItemTypeToy, "games", entities.RarityRare, 25, "/CatPackPaid/CatItems/PlayGrounds/CatPlayGround.png"},
	{13, "arcade_machine", "Arcade Machine", "Retro arcade machine for gaming fun", entities.ItemTypeToy, "games", entities.RarityLegendary, 75, "/CatPackPaid/CatItems/PlayGrounds/CatPlayGround.png"},
}

// SeedCatalog inserts the launch catalog when the table is empty.
func SeedCatalog(ctx context.Context, repo repositories.CatalogRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, s := range launchCatalog {
		item := &entities.MarketplaceItem{
			ID:          s.id,
			Slug:        s.slug,
			Name:        s.name,
			Description: null.StringFrom(s.desc),
			ItemType:    s.itemType,
			Category:    s.category,
			Rarity:      s.rarity,
			Price:       s.price,
			ImageURL:    null.StringFrom(s.image),
			Available:   true,
		}
		if err := repo.Upsert(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
