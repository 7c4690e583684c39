package models

import "time"

type ProjectAssignment struct {
	UserID     string    `json:"user_id" gorm:"primaryKey"`
	ProjectID  string    `json:"project_id" gorm:"primaryKey"`
	AssignedAt time.Time `json:"assigned_at"`
	AssignedBy *string   `json:"assigned_by"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

type TaskAssignment struct {
	UserID     string    `json:"user_id" gorm:"primaryKey"`
	TaskID     string    `json:"task_id" gorm:"primaryKey"`
	AssignedAt time.Time `json:"assigned_at"`
	AssignedBy *string   `json:"assigned_by"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Task *Task `json:"task,omitempty" gorm:"foreignKey:TaskID"`
}
