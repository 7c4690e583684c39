package models

import "time"

type Project struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CustomerID  string    `json:"customer_id" gorm:"not null;index"`
	ParentID    *string   `json:"parent_id" gorm:"index"`
	Name        string    `json:"name" gorm:"not null"`
	Code        string    `json:"code" gorm:"not null"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	StartDate   *Date     `json:"start_date"`
	EndDate     *Date     `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Children []Project `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Tasks    []Task    `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
}
