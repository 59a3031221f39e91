package models

import (
	"time"

	"ministrysms/tools"
)

/************************************************
/**** MARK: USER STATUS ****/
/************************************************/
const USER_STATUS_PENDING = 0
const USER_STATUS_APPROVED = 1
const USER_STATUS_DISABLED = 2

// User is a ministry staff account. New accounts are created pending and
// inactive; only admin moderation can activate them.
type User struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Username  string     `gorm:"not null;unique" json:"username" form:"username"`
	Email     string     `gorm:"not null;unique" json:"email" form:"email"`
	Password  string     `gorm:"not null" json:"password,omitempty" form:"password"`
	Status    int        `gorm:"default:0" json:"status" form:"status"`
	IsActive  bool       `gorm:"column:is_active;not null; default: false" json:"is_active"`
	IsAdmin   bool       `gorm:"column:is_admin;not null; default: false" json:"is_admin"`
	CreatedAt *time.Time `json:"created_at" form:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" form:"updated_at"`
}

func (user User) MissingFields() string {
	if user.Username == "" {
		return "username"
	} else if user.Email == "" {
		return "email"
	} else if user.Password == "" {
		return "password"
	} else if tools.CheckPassword(user.Password) != "" {
		return tools.CheckPassword(user.Password)
	}
	return ""
}

func StatusLabel(status int) string {
	switch status {
	case USER_STATUS_APPROVED:
		return "approved"
	case USER_STATUS_DISABLED:
		return "disabled"
	default:
		return "pending"
	}
}
