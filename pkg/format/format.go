package format

// ShortenAddress renders a chain address as "0x1234...abcd" for display.
// Inputs shorter than 10 characters cannot be shortened unambiguously and
// collapse to the empty string.
func ShortenAddress(address string) string {
	if len(address) < 10 {
		return ""
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// AccountTypeColor maps an account key scheme to its UI color token.
func AccountTypeColor(accountType string) string {
	switch accountType {
	case "Ed25519":
		return "text-primary"
	case "Keyless":
		return "text-secondary"
	case "Secp256k1":
		return "text-accent"
	default:
		return "text-foreground"
	}
}
