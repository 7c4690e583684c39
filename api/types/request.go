package types

import "timetracker/models"

type UnitRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CustomerRequest struct {
	UnitID       string `json:"unit_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

type CustomerUpdateRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

type ProjectRequest struct {
	CustomerID  string       `json:"customer_id" binding:"required"`
	ParentID    *string      `json:"parent_id"`
	Name        string       `json:"name" binding:"required,max=200"`
	Code        string       `json:"code" binding:"required,max=100"`
	Description string       `json:"description"`
	StartDate   *models.Date `json:"start_date"`
	EndDate     *models.Date `json:"end_date"`
}

type ProjectUpdateRequest struct {
	Name        string       `json:"name" binding:"required,max=200"`
	Code        string       `json:"code" binding:"required,max=100"`
	Description string       `json:"description"`
	StartDate   *models.Date `json:"start_date"`
	EndDate     *models.Date `json:"end_date"`
}

type TaskRequest struct {
	ProjectID   string       `json:"project_id" binding:"required"`
	Name        string       `json:"name" binding:"required,max=200"`
	Code        string       `json:"code" binding:"required,max=100"`
	Description string       `json:"description"`
	StartDate   *models.Date `json:"start_date"`
	EndDate     *models.Date `json:"end_date"`
}

type TaskUpdateRequest struct {
	Name        string       `json:"name" binding:"required,max=200"`
	Code        string       `json:"code" binding:"required,max=100"`
	Description string       `json:"description"`
	StartDate   *models.Date `json:"start_date"`
	EndDate     *models.Date `json:"end_date"`
}

type UserUpdateRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=admin manager employee"`
}

type AssignUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type TimeEntryRequest struct {
	TaskID      string       `json:"task_id" binding:"required"`
	Date        models.Date  `json:"date"`
	Hours       models.Hours `json:"hours"`
	Description string       `json:"description" binding:"max=500"`
}

type TimeEntryUpdateRequest struct {
	Date        models.Date  `json:"date"`
	Hours       models.Hours `json:"hours"`
	Description string       `json:"description" binding:"max=500"`
}
