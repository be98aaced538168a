package entities

import "github.com/volatiletech/null/v8"

// PetNFT is a minted pet collectible read from the ledger.
type PetNFT struct {
	ID        uint64      `json:"id"`
	Owner     string      `json:"owner"`
	PairID    uint64      `json:"pairId"`
	Name      string      `json:"name"`
	ImageURL  null.String `json:"imageUrl,omitempty"`
	MintedAt  uint64      `json:"mintedAt"`
	TokenName string      `json:"tokenName"`
}

// CollectionInfo describes the on-chain NFT collection.
type CollectionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URI         string `json:"uri"`
	Supply      uint64 `json:"supply"`
	MaxSupply   uint64 `json:"maxSupply"`
}
