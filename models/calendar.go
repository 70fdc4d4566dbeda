package models

// ScheduleState is the resolved availability classification for one date,
// produced by the precedence chain past > holiday > override > weekly.
type ScheduleState string

const (
	StatePast        ScheduleState = "past"
	StateBlocked     ScheduleState = "blocked"
	StateCustom      ScheduleState = "custom"
	StateAvailable   ScheduleState = "available"
	StateUnavailable ScheduleState = "unavailable"

	// DisplayBooked is a display-only promotion applied when a non-cancelled
	// job sits on the date. It never replaces the underlying ScheduleState.
	DisplayBooked ScheduleState = "booked"
)

// DateClassification is the schedule-layer result for one calendar date.
// Recomputed on demand for every calendar cell; never persisted.
type DateClassification struct {
	Date   string        `json:"date"`
	State  ScheduleState `json:"state"`
	Label  string        `json:"label,omitempty"`  // e.g., "Holiday", "Holiday Hours"
	Reason string        `json:"reason,omitempty"` // from a blocking override
	Blocks []TimeBlock   `json:"blocks,omitempty"` // effective hours for custom/available
}

// DayCell is one calendar cell: the schedule classification plus the job
// overlay the UI renders on top of it.
type DayCell struct {
	DateClassification
	DisplayState ScheduleState `json:"displayState"`
	Jobs         []Job         `json:"jobs,omitempty"`
}

// MonthView is a fully resolved month grid for one provider.
type MonthView struct {
	Year  int       `json:"year"`
	Month int       `json:"month"` // 1-12
	Days  []DayCell `json:"days"`
}

// OverrideWarning is returned alongside a successful blocking save when the
// affected dates still hold active jobs (warn-and-allow policy).
type OverrideWarning struct {
	Date string `json:"date"`
	Jobs []Job  `json:"jobs"`
}
