package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Signature scheme identifiers appended to the public key when deriving an
// account's authentication key.
const (
	Ed25519Scheme      byte = 0x00
	MultiEd25519Scheme byte = 0x01
)

// DeriveAuthKey derives the authentication key for a single Ed25519 public
// key: sha3-256(public_key | scheme). For accounts that have never rotated
// their key this equals the account address.
func DeriveAuthKey(publicKeyHex string) (string, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(publicKeyHex), "0x")
	key, err := hex.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("invalid public key hex: %w", err)
	}
	if len(key) != 32 {
		return "", fmt.Errorf("ed25519 public key must be 32 bytes, got %d", len(key))
	}

	digest := sha3.Sum256(append(key, Ed25519Scheme))
	return "0x" + hex.EncodeToString(digest[:]), nil
}

// MatchesAddress reports whether the Ed25519 public key derives the given
// account address. Keyless and rotated accounts legitimately fail this check,
// so callers should treat a mismatch as advisory.
func MatchesAddress(address, publicKeyHex string) bool {
	derived, err := DeriveAuthKey(publicKeyHex)
	if err != nil {
		return false
	}
	return normalizeAddress(derived) == normalizeAddress(address)
}

func normalizeAddress(address string) string {
	addr := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(address)), "0x")
	return strings.TrimLeft(addr, "0")
}
