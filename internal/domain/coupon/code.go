package coupon

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

var ErrInvalidCode = errors.New("invalid coupon code format")

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{8}$`)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Code is an 8-character uppercase alphanumeric booking code.
// Lookup is case-insensitive: codes are normalized to upper case on entry.
type Code string

func NewCode(raw string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !codeRegex.MatchString(normalized) {
		return Code(""), ErrInvalidCode
	}
	return Code(normalized), nil
}

// Normalize uppercases a raw code for lookup without enforcing the format,
// so that malformed input still produces a clean "not found" instead of 400.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func (c Code) String() string {
	return string(c)
}

// GenerateCode draws 8 characters from [A-Z0-9] with crypto/rand.
// Uniqueness is enforced by the store's unique index, not here.
func GenerateCode() (Code, error) {
	b := make([]byte, 8)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return Code(""), err
		}
		b[i] = codeCharset[n.Int64()]
	}
	return Code(b), nil
}
