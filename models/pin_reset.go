package models

import "time"

// PIN codes are valid for 10 minutes from creation.
const PIN_RESET_VALID_MINUTES = 10

// PinReset is a one-use 6-digit code for the password reset flow.
// Only the hash of the code is stored (never the code itself).
// Verified flips irreversibly true when the code is consumed.
type PinReset struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	CodeHash  string     `gorm:"not null;index" json:"-"`
	Verified  bool       `gorm:"not null; default: false" json:"verified"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (pin PinReset) IsExpired(now time.Time) bool {
	if pin.CreatedAt == nil {
		return true
	}
	return now.Sub(*pin.CreatedAt) > PIN_RESET_VALID_MINUTES*time.Minute
}
