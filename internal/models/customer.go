package models

import "time"

type Customer struct {
	ID           uint   `gorm:"primarykey"`
	TrIdentityNo string `gorm:"size:11;uniqueIndex;not null"`
	Name         string `gorm:"size:50;not null"`
	Surname      string `gorm:"size:50;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"size:10;not null;default:'BASIC'"`
	TokenVersion int    `gorm:"default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName is the display name used in wallet listings.
func (c *Customer) FullName() string {
	return c.Name + " " + c.Surname
}

func (c *Customer) IsAdmin() bool {
	return c.Role == RoleAdmin
}
