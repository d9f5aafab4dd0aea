package signgloss

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeText lowercases text and collapses runs of whitespace so that
// trivially different spellings of the same request share a cache key.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// CacheKey derives the content-addressed cache key for a (text, language)
// pair: the SHA-256 of the normalized text joined with the language code.
// The cache is process-local, so the exact algorithm is not a compatibility
// requirement; it only has to be stable and collision-resistant.
func CacheKey(text string, lang Language) string {
	content := NormalizeText(text) + "_" + string(lang)
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
