package domain

import "strings"

// Locale identifies the two languages the foundation publishes in. Route
// segments equal to "en" select English; any other value resolves to Arabic.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleArabic  Locale = "ar"
)

// ParseLocale maps a raw route segment onto a supported locale.
func ParseLocale(raw string) Locale {
	if strings.EqualFold(strings.TrimSpace(raw), string(LocaleEnglish)) {
		return LocaleEnglish
	}
	return LocaleArabic
}

// IsEnglish reports whether the locale selects the English field of a
// bilingual pair.
func (l Locale) IsEnglish() bool {
	return l == LocaleEnglish
}

// ApplicationStatus represents the review lifecycle of a job application.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewing   ApplicationStatus = "reviewing"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

// ApplicationStatuses lists every accepted application status. The CMS
// exposes them as a flat select; no transition graph is enforced.
func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationPending,
		ApplicationReviewing,
		ApplicationShortlisted,
		ApplicationRejected,
		ApplicationHired,
	}
}

// IsValid reports whether the status is one of the accepted values.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewing, ApplicationShortlisted,
		ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

// VolunteerStatus represents the review lifecycle of a volunteer request.
type VolunteerStatus string

const (
	VolunteerPending  VolunteerStatus = "pending"
	VolunteerApproved VolunteerStatus = "approved"
	VolunteerRejected VolunteerStatus = "rejected"
)

// VolunteerStatuses lists every accepted volunteer request status.
func VolunteerStatuses() []VolunteerStatus {
	return []VolunteerStatus{VolunteerPending, VolunteerApproved, VolunteerRejected}
}

// IsValid reports whether the status is one of the accepted values.
func (s VolunteerStatus) IsValid() bool {
	switch s {
	case VolunteerPending, VolunteerApproved, VolunteerRejected:
		return true
	}
	return false
}
