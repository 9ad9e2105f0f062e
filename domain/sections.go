package domain

import "github.com/google/uuid"

// SectionEntry is a small bilingual record used by the growable section
// editors (partners, donors, funding providers, beneficiaries). Every entry
// carries a generated identifier so add/remove operations address entries by
// ID rather than by array position.
type SectionEntry struct {
	ID       uuid.UUID `json:"id"`
	NameEn   string    `json:"nameEn"`
	NameAr   string    `json:"nameAr"`
	ImageURL string    `json:"imageUrl,omitempty"`
}

// Statistic is a bilingual measurement record (statistics, deliverables,
// costs): a numeric value plus a unit label in each language.
type Statistic struct {
	ID      uuid.UUID `json:"id"`
	TitleEn string    `json:"titleEn"`
	TitleAr string    `json:"titleAr"`
	Value   float64   `json:"value"`
	UnitEn  string    `json:"unitEn,omitempty"`
	UnitAr  string    `json:"unitAr,omitempty"`
}

// Slide is a bilingual hero/program slide with an explicit position so
// ordering survives entry removal.
type Slide struct {
	ID       uuid.UUID `json:"id"`
	TitleEn  string    `json:"titleEn"`
	TitleAr  string    `json:"titleAr"`
	ImageURL string    `json:"imageUrl"`
	LinkURL  string    `json:"linkUrl,omitempty"`
	Position int       `json:"position"`
}

// StampSectionEntries assigns identifiers to entries created without one.
// Existing IDs are preserved so concurrent editors keep stable references.
func StampSectionEntries(entries []SectionEntry) []SectionEntry {
	for i := range entries {
		if entries[i].ID == uuid.Nil {
			entries[i].ID = uuid.New()
		}
	}
	return entries
}

// StampStatistics assigns identifiers to statistics created without one.
func StampStatistics(entries []Statistic) []Statistic {
	for i := range entries {
		if entries[i].ID == uuid.Nil {
			entries[i].ID = uuid.New()
		}
	}
	return entries
}

// StampSlides assigns identifiers to slides created without one.
func StampSlides(entries []Slide) []Slide {
	for i := range entries {
		if entries[i].ID == uuid.Nil {
			entries[i].ID = uuid.New()
		}
	}
	return entries
}

// RemoveSectionEntry drops the entry with the given ID, preserving order.
func RemoveSectionEntry(entries []SectionEntry, id uuid.UUID) []SectionEntry {
	out := entries[:0]
	for _, entry := range entries {
		if entry.ID != id {
			out = append(out, entry)
		}
	}
	return out
}
