package models

import "time"

// Contact is a recipient phone record owned by exactly one Category.
// Region and Subregion are optional (empty when absent).
type Contact struct {
	ID         int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Category   Category   `json:"category" form:"category" gorm:"association_autoupdate:false;association_autocreate:false"`
	CategoryID int64      `json:"category_id" form:"category_id" gorm:"not null;index"`
	Name       string     `gorm:"not null" json:"name" form:"name"`
	Phone      string     `gorm:"not null" json:"phone" form:"phone"`
	Region     string     `gorm:"default:''" json:"region" form:"region"`
	Subregion  string     `gorm:"default:''" json:"subregion" form:"subregion"`
	CreatedAt  *time.Time `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func (contact Contact) MissingFields() string {
	if contact.Name == "" {
		return "name"
	} else if contact.Phone == "" {
		return "phone"
	} else if contact.CategoryID == 0 {
		return "category_id"
	}
	return ""
}
