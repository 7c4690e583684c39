package models

import "time"

type TimeEntry struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null;index"`
	TaskID      string    `json:"task_id" gorm:"not null;index"`
	Date        Date      `json:"date" gorm:"not null;index"`
	Hours       Hours     `json:"hours" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Task *Task `json:"task,omitempty" gorm:"foreignKey:TaskID"`
}
