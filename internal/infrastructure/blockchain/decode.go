package blockchain

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	domainerrors "github.com/saiisback/capy/internal/domain/errors"
)

// NormalizeID coerces the heterogeneous id shapes returned by view functions
// into a uint64. Accepted shapes, tried in order:
//
//	number            42
//	numeric string    "42"
//	single-elem array ["42"]
//	wrapper object    {"value": "42"} or any object with one scalar field
//
// As a last resort a leading digit run is scanned out of the string form.
func NormalizeID(raw json.RawMessage) (uint64, error) {
	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		if asNumber < 0 {
			return 0, fmt.Errorf("%w: negative id", domainerrors.ErrUnrecognizedShape)
		}
		return uint64(asNumber), nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return parseIDString(asString)
	}

	var asArray []json.RawMessage
	if err := json.Unmarshal(raw, &asArray); err == nil {
		if len(asArray) != 1 {
			return 0, fmt.Errorf("%w: array of %d elements", domainerrors.ErrUnrecognizedShape, len(asArray))
		}
		return NormalizeID(asArray[0])
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asObject); err == nil {
		if inner, ok := asObject["value"]; ok {
			return NormalizeID(inner)
		}
		if len(asObject) == 1 {
			for _, inner := range asObject {
				return NormalizeID(inner)
			}
		}
		return 0, fmt.Errorf("%w: object with %d fields", domainerrors.ErrUnrecognizedShape, len(asObject))
	}

	return 0, fmt.Errorf("%w: %s", domainerrors.ErrUnrecognizedShape, string(raw))
}

func parseIDString(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.ParseUint(s, 10, 64); err == nil {
		return id, nil
	}
	// Scan a leading digit run, e.g. "7n" from a bigint-ish encoder.
	var digits strings.Builder
	for _, r := range s {
		if !unicode.IsDigit(r) {
			break
		}
		digits.WriteRune(r)
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("%w: %q", domainerrors.ErrUnrecognizedShape, s)
	}
	return strconv.ParseUint(digits.String(), 10, 64)
}

// DecodeText decodes a view-function text value. Move strings surface either
// as plain UTF-8, as "0x"-prefixed hex, or as an array of byte values.
func DecodeText(raw json.RawMessage) (string, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if strings.HasPrefix(asString, "0x") {
			if decoded, err := hex.DecodeString(asString[2:]); err == nil {
				return string(decoded), nil
			}
		}
		return asString, nil
	}

	var asInts []uint16
	if err := json.Unmarshal(raw, &asInts); err == nil {
		buf := make([]byte, 0, len(asInts))
		for _, b := range asInts {
			if b > 0xff {
				return "", fmt.Errorf("%w: byte value %d out of range", domainerrors.ErrUnrecognizedShape, b)
			}
			buf = append(buf, byte(b))
		}
		return string(buf), nil
	}

	return "", fmt.Errorf("%w: %s", domainerrors.ErrUnrecognizedShape, string(raw))
}

// DecodeU64 parses the usual u64 view encodings, number or decimal string.
func DecodeU64(raw json.RawMessage) (uint64, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return strconv.ParseUint(asString, 10, 64)
	}
	var asNumber uint64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, nil
	}
	return 0, fmt.Errorf("%w: %s", domainerrors.ErrUnrecognizedShape, string(raw))
}
