package entity

import "time"

type RecordEventType string

const (
	RecordCreated     RecordEventType = "created"
	RecordUpdated     RecordEventType = "updated"
	RecordDeleted     RecordEventType = "deleted"
	RecordProvisioned RecordEventType = "provisioned"
)

type RecordEvent struct {
	Type   RecordEventType `json:"type"`
	Record Record          `json:"record"`
	Actor  string          `json:"actor"`
	At     time.Time       `json:"at"`
}
