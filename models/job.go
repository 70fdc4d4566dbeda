package models

import "time"

// Job statuses the scheduling core cares about. Jobs are owned by the wider
// marketplace; this core only reads date/status and moves scheduled dates.
const (
	JobStatusPending   = "pending"
	JobStatusConfirmed = "confirmed"
	JobStatusCompleted = "completed"
	JobStatusCancelled = "cancelled"
)

// Job is a customer booking assigned to a provider.
type Job struct {
	ID            string    `bson:"id" json:"id"`
	ProviderID    string    `bson:"provider_id" json:"providerId"`
	CustomerName  string    `bson:"customer_name" json:"customerName"`
	ServiceType   string    `bson:"service_type" json:"serviceType"` // e.g., "Cleaning", "Plumbing"
	ScheduledDate time.Time `bson:"scheduled_date" json:"scheduledDate"`
	Status        string    `bson:"status" json:"status"`
}

// Active reports whether the job still occupies its date on the calendar.
func (j *Job) Active() bool {
	return j.Status != JobStatusCancelled
}
