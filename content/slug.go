package content

import (
	"strings"
	"unicode"

	slug "github.com/goliatone/go-slug"
)

// SlugNormalizer exposes the slug normalizer interface for Latin-script slugs.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default Latin-script slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// Slugify derives a URL-safe identifier from a title in either language.
// ASCII titles run through go-slug first; the sanitize pass then enforces the
// shared rules for both scripts: lowercase Latin letters, Arabic letters,
// digits, and single hyphens in place of whitespace runs, with no leading or
// trailing hyphens. The function is idempotent.
func Slugify(value string) string {
	lowered := strings.ToLower(strings.TrimSpace(value))
	if lowered == "" {
		return ""
	}
	if isASCII(lowered) {
		if normalized, err := slug.Normalize(lowered); err == nil {
			lowered = normalized
		}
	}
	return sanitizeSlug(lowered)
}

// IsValidSlug reports whether the value already satisfies the slug rules.
func IsValidSlug(value string) bool {
	return value != "" && Slugify(value) == value
}

func sanitizeSlug(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	pendingHyphen := false
	for _, r := range value {
		switch {
		case slugRune(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingHyphen = true
		default:
			// stripped
		}
	}
	return b.String()
}

func slugRune(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	if r >= '0' && r <= '9' {
		return true
	}
	if unicode.Is(unicode.Arabic, r) {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

func isASCII(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] >= 0x80 {
			return false
		}
	}
	return true
}
