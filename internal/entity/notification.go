package entity

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

const DefaultNotificationTime = 6000 * time.Millisecond

// Notification is a transient message shown to the user.
type Notification struct {
	Type    Severity `json:"type"`
	Message string   `json:"message"`
	// Time is the auto-dismiss delay in milliseconds.
	Time int64 `json:"time"`
}

func NewNotification(severity Severity, message string) Notification {
	return Notification{
		Type:    severity,
		Message: message,
		Time:    DefaultNotificationTime.Milliseconds(),
	}
}
