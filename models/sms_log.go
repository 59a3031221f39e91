package models

import "time"

/************************************************
/**** MARK: DISPATCH STATUS ****/
/************************************************/
const SMS_STATUS_OK = "ok"
const SMS_STATUS_ERROR = "error"
const SMS_STATUS_UNKNOWN = "unknown"

// SMSLog is the audit row for one broadcast attempt. Append-only: rows are
// written after every gateway call (success or failure) and never mutated.
// SenderID goes nil when the sending account is deleted.
type SMSLog struct {
	ID         int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	MessageID  string     `gorm:"not null;unique_index" json:"message_id"`
	SenderID   *int64     `gorm:"index" json:"sender_id"`
	Recipients string     `gorm:"not null" json:"recipients"`
	Message    string     `gorm:"not null" json:"message"`
	Status     string     `gorm:"not null;default:'unknown'" json:"status"`
	SentAt     *time.Time `json:"sent_at"`
}
