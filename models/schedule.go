package models

// TimeBlock is a contiguous interval of available hours within one day.
// Start and End are 24-hour "HH:MM" clock strings; intervals are half-open,
// so 09:00-17:00 and 17:00-21:00 do not overlap.
type TimeBlock struct {
	Start string `bson:"start" json:"start"` // e.g., "09:00"
	End   string `bson:"end" json:"end"`     // e.g., "17:00"
}

// WeeklyDaySchedule is the recurring availability pattern for one weekday.
// Disabling a day suppresses its blocks from resolution without deleting them.
type WeeklyDaySchedule struct {
	Weekday int         `bson:"weekday" json:"weekday"` // 0 = Sunday .. 6 = Saturday
	Enabled bool        `bson:"enabled" json:"enabled"`
	Blocks  []TimeBlock `bson:"blocks" json:"blocks"`
}

// WeeklySchedule is the persisted document holding a provider's full week,
// one document per provider (upsert keyed by provider ID).
type WeeklySchedule struct {
	ProviderID string              `bson:"provider_id" json:"providerId"`
	Days       []WeeklyDaySchedule `bson:"days" json:"days"` // exactly 7 entries, Sunday first
}

// ViolationKind identifies a single block validation rule.
type ViolationKind string

const (
	ViolationInvalidFormat  ViolationKind = "invalid_format" // malformed clock string
	ViolationStartNotBefore ViolationKind = "start_not_before_end"
	ViolationTooShort       ViolationKind = "too_short" // under 30 minutes
	ViolationTooLong        ViolationKind = "too_long"  // over 12 hours
)

// BlockViolation is one violated rule for one time block. Validation returns
// every violation at once so the UI can show them all simultaneously.
type BlockViolation struct {
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

// Conflict reports a pair of overlapping blocks within one day, by index.
type Conflict struct {
	IndexA int `json:"indexA"`
	IndexB int `json:"indexB"`
}

// BlockIssues collects the violations for one block within a day.
type BlockIssues struct {
	BlockIndex int              `json:"blockIndex"`
	Violations []BlockViolation `json:"violations"`
}

// DayIssues aggregates everything wrong with one weekday's block list.
type DayIssues struct {
	Weekday   int           `json:"weekday"`
	Blocks    []BlockIssues `json:"blocks,omitempty"`
	Conflicts []Conflict    `json:"conflicts,omitempty"`
}
