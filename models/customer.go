package models

import "time"

type Customer struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UnitID       string    `json:"unit_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Unit     *Unit     `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CustomerID"`
}
