package schedule

import "fmt"

// Error codes for domain-level rejections.
const (
	CodeScheduleInvalid = "scheduleInvalid" // validation or overlap issues block the save
	CodeInvalidDate     = "invalidDate"     // malformed YYYY-MM-DD key
	CodePastDate        = "pastDate"        // action targets a date before today
	CodeNotBlocked      = "notBlocked"      // custom holiday hours on a non-blocked date
	CodeNotFound        = "notFound"
	CodeJobCancelled    = "jobCancelled" // cancelled jobs cannot be rescheduled
)

// Error is a typed domain error carried up to the HTTP layer.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a schedule domain error.
func NewError(code, format string, args ...interface{}) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
