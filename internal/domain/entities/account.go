package entities

// AccountType identifies the signature scheme behind a connected account.
type AccountType string

const (
	AccountTypeEd25519   AccountType = "Ed25519"
	AccountTypeKeyless   AccountType = "Keyless"
	AccountTypeSecp256k1 AccountType = "Secp256k1"
	AccountTypeUnknown   AccountType = "Unknown"
)

// ParseAccountType maps a wallet-reported scheme string to an AccountType.
func ParseAccountType(s string) AccountType {
	switch AccountType(s) {
	case AccountTypeEd25519, AccountTypeKeyless, AccountTypeSecp256k1:
		return AccountType(s)
	default:
		return AccountTypeUnknown
	}
}

// Account is a wallet account as reported by the wallet bridge.
type Account struct {
	Address     string      `json:"address"`
	PublicKey   string      `json:"publicKey"`
	AccountType AccountType `json:"accountType"`
}
