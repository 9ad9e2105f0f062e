package content

import (
	"strings"

	"github.com/amalfoundation/foundation-cms/domain"
)

// DefaultListLimit bounds unqualified list requests.
const DefaultListLimit = 24

// MaxListLimit caps the per-request page size.
const MaxListLimit = 100

// ListOptions captures every filter the listing endpoints accept. Filtering
// and pagination are applied in the store so totals reflect the full
// filtered set, not a client-side window over a truncated fetch.
type ListOptions struct {
	// Published narrows to published (true) or draft (false) records.
	Published *bool
	// Locale narrows to records available in the given language. Empty
	// means no language restriction (CMS listings).
	Locale domain.Locale
	// Search is matched case-insensitively against titles and body
	// content/description fields only; tags are excluded.
	Search string
	// Category is matched case-insensitively as a substring against each
	// record's tag strings.
	Category string
	OrderBy  string
	Order    string
	Limit    int
	Offset   int
}

// Normalize clamps pagination bounds and trims filter inputs.
func (o ListOptions) Normalize() ListOptions {
	o.Search = strings.TrimSpace(o.Search)
	o.Category = strings.TrimSpace(o.Category)
	o.OrderBy = strings.TrimSpace(o.OrderBy)
	if o.Limit <= 0 {
		o.Limit = DefaultListLimit
	}
	if o.Limit > MaxListLimit {
		o.Limit = MaxListLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	switch strings.ToLower(strings.TrimSpace(o.Order)) {
	case "asc":
		o.Order = "asc"
	default:
		o.Order = "desc"
	}
	return o
}

// PublishedOnly returns options narrowed to published records in a locale.
func PublishedOnly(locale domain.Locale) ListOptions {
	published := true
	return ListOptions{Published: &published, Locale: locale}
}

// Matches applies the non-pagination filters in memory. The bun repository
// pushes the same predicate into SQL; the memory repository and the public
// listing tests share this implementation.
func (o ListOptions) Matches(entry Entry) bool {
	if o.Published != nil && entry.Published() != *o.Published {
		return false
	}
	if o.Locale != "" && !entry.LocaleVisible(o.Locale) {
		return false
	}
	if o.Search != "" && !entry.MatchesQuery(o.Search) {
		return false
	}
	if o.Category != "" && !MatchesCategory(entry.Tags(), o.Category) {
		return false
	}
	return true
}

// MatchesCategory reports whether any tag contains the selected category,
// case-insensitively. Substring containment is intentional: "education"
// matches a tag "Educational Outreach".
func MatchesCategory(tags []string, category string) bool {
	needle := strings.ToLower(strings.TrimSpace(category))
	if needle == "" {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
