package entities

import "strings"

// CoParentPair is a bonded pair sharing a pet. The ledger view is
// authoritative; pet stats are never maintained locally.
type CoParentPair struct {
	ID         uint64 `json:"id"`
	Parent1    string `json:"parent1"`
	Parent2    string `json:"parent2"`
	PetName    string `json:"petName"`
	Hunger     uint64 `json:"hunger"`
	Happiness  uint64 `json:"happiness"`
	CreatedAt  uint64 `json:"createdAt"`
	LastFedAt  uint64 `json:"lastFedAt"`
	LastLoveAt uint64 `json:"lastLoveAt"`
}

// PartnerOf returns the other parent's address, or "" when the given address
// is not part of the pair.
func (p CoParentPair) PartnerOf(address string) string {
	switch {
	case sameAddress(p.Parent1, address):
		return p.Parent2
	case sameAddress(p.Parent2, address):
		return p.Parent1
	default:
		return ""
	}
}

// Includes reports whether the address is one of the two parents.
func (p CoParentPair) Includes(address string) bool {
	return sameAddress(p.Parent1, address) || sameAddress(p.Parent2, address)
}

func sameAddress(a, b string) bool {
	norm := func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
		return strings.TrimLeft(s, "0")
	}
	return norm(a) == norm(b)
}
