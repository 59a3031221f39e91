package models

import "time"

// Category groups contacts (e.g. "Pastors", "Regional", "Subregional").
// Created lazily during spreadsheet import (get-or-create by name).
type Category struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null;unique" json:"name" form:"name"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
