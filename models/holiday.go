package models

// HolidayType distinguishes federal observances from popular (non-federal) dates.
type HolidayType string

const (
	HolidayFederal HolidayType = "federal"
	HolidayPopular HolidayType = "popular"
)

// Holiday is a computed calendar entry, generated deterministically per year.
// Never persisted.
type Holiday struct {
	Name string      `json:"name"`
	Date string      `json:"date"` // "2024-07-04"
	Type HolidayType `json:"type"`
}

// HolidaySettings holds one provider's holiday choices for one year:
// which holiday dates are fully blocked, and which of those instead get a
// single block of custom hours (custom hours win over the plain block).
// One document per (provider, year), upsert keyed by both.
type HolidaySettings struct {
	ProviderID   string               `bson:"provider_id" json:"providerId"`
	Year         int                  `bson:"year" json:"year"`
	BlockedDates []string             `bson:"blocked_dates" json:"blockedDates"`
	CustomHours  map[string]TimeBlock `bson:"custom_hours" json:"customHours"`
}

// IsBlocked reports whether the given date key is in the blocked set.
func (hs *HolidaySettings) IsBlocked(date string) bool {
	for _, d := range hs.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}

// CustomHoursFor returns the custom hours for a date, if any.
func (hs *HolidaySettings) CustomHoursFor(date string) (TimeBlock, bool) {
	if hs.CustomHours == nil {
		return TimeBlock{}, false
	}
	block, ok := hs.CustomHours[date]
	return block, ok
}
