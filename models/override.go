package models

import "time"

// OverrideKind distinguishes the two per-date exception flavours.
type OverrideKind string

const (
	OverrideBlocked OverrideKind = "blocked"
	OverrideCustom  OverrideKind = "custom"
)

// DateOverride is a per-specific-date exception that supersedes the weekly
// pattern. At most one override exists per (provider, date); saving replaces
// any prior record and deleting reverts the date to the weekly pattern.
type DateOverride struct {
	ID         string       `bson:"id" json:"id"`
	ProviderID string       `bson:"provider_id" json:"providerId"`
	Date       string       `bson:"date" json:"date"` // "2025-02-25"
	Kind       OverrideKind `bson:"kind" json:"kind"`
	Reason     string       `bson:"reason,omitempty" json:"reason,omitempty"`
	Blocks     []TimeBlock  `bson:"blocks,omitempty" json:"blocks,omitempty"` // set when Kind is "custom"
	CreatedAt  time.Time    `bson:"created_at" json:"createdAt"`
}

// BulkBlockRequest blocks several dates at once with a shared reason.
// Dates may come from individual picks or an expanded contiguous range.
type BulkBlockRequest struct {
	Dates  []string `json:"dates" binding:"required,min=1"`
	Reason string   `json:"reason"`
}
