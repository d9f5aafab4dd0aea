package signgloss

import "strings"

// Language is a supported target sign language.
type Language string

const (
	// ISL is Indian Sign Language, which uses Subject-Object-Verb word order.
	ISL Language = "isl"
	// ASL is American Sign Language, handled with identity word order and a
	// plain whitespace tokenizer. This is an intentionally cheaper path.
	ASL Language = "asl"
)

// LanguageNames maps language codes to human-readable names.
var LanguageNames = map[Language]string{
	ISL: "Indian Sign Language",
	ASL: "American Sign Language",
}

// SupportedLanguages returns the recognized language variants.
func SupportedLanguages() []Language {
	return []Language{ISL, ASL}
}

// ParseLanguage converts a language code to a Language. Matching is
// case-insensitive ("ISL", "isl" and "Isl" are equivalent). Unknown codes
// return an UnsupportedLanguageError.
func ParseLanguage(code string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case ISL:
		return ISL, nil
	case ASL:
		return ASL, nil
	default:
		return "", &UnsupportedLanguageError{Language: code}
	}
}

// Name returns the human-readable name for the language.
// Falls back to the code itself if not found.
func (l Language) Name() string {
	if name, ok := LanguageNames[l]; ok {
		return name
	}
	return string(l)
}

// AssetPrefix returns the prefix used in asset identifiers (e.g., "isl" in
// "isl_1699999999").
func (l Language) AssetPrefix() string {
	return string(l)
}

// Reorders reports whether the language applies grammar reordering. ISL
// reorders English SVO into SOV; ASL keeps the input order.
func (l Language) Reorders() bool {
	return l == ISL
}
