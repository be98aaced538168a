package entities

import "github.com/volatiletech/null/v8"

// ItemType categorizes marketplace items.
type ItemType uint8

const (
	ItemTypeFood       ItemType = 1
	ItemTypeToy        ItemType = 2
	ItemTypeFurniture  ItemType = 3
	ItemTypeDecoration ItemType = 4
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeFood:
		return "food"
	case ItemTypeToy:
		return "toy"
	case ItemTypeFurniture:
		return "furniture"
	case ItemTypeDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Rarity is a display tier for catalog entries.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// MarketplaceItem is a purchasable catalog entry. ID and Price mirror the
// on-chain marketplace; the rest is display metadata the contract does not
// store.
type MarketplaceItem struct {
	ID          uint64      `json:"id"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Description null.String `json:"description,omitempty"`
	ItemType    ItemType    `json:"itemType"`
	Category    string      `json:"category"`
	Rarity      Rarity      `json:"rarity"`
	Price       uint64      `json:"price"`
	ImageURL    null.String `json:"imageUrl,omitempty"`
	Available   bool        `json:"available"`
}

// InventoryItem is an item the user owns, enriched with catalog detail when
// the catalog row is still known.
type InventoryItem struct {
	ItemID      uint64      `json:"itemId"`
	Name        string      `json:"name"`
	Description null.String `json:"description,omitempty"`
	ItemType    ItemType    `json:"itemType"`
	ImageURL    null.String `json:"imageUrl,omitempty"`
	PurchasedAt uint64      `json:"purchasedAt"`
}
