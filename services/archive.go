package services

import (
	"timetracker/api/errs"
	"timetracker/models"
)

// ArchiveUnit deactivates the unit and its active customers.
func ArchiveUnit(id string) error {
	var unit models.Unit
	if err := models.DB.First(&unit, "id = ?", id).Error; err != nil {
		return errs.ErrUnitNotFound
	}

	unit.IsActive = false
	if err := models.DB.Save(&unit).Error; err != nil {
		return err
	}

	return models.DB.Model(&models.Customer{}).
		Where("unit_id = ? AND is_active = ?", id, true).
		Update("is_active", false).Error
}

// ArchiveCustomer deactivates the customer and its active projects.
func ArchiveCustomer(id string) error {
	var customer models.Customer
	if err := models.DB.First(&customer, "id = ?", id).Error; err != nil {
		return errs.ErrCustomerNotFound
	}

	customer.IsActive = false
	if err := models.DB.Save(&customer).Error; err != nil {
		return err
	}

	return models.DB.Model(&models.Project{}).
		Where("customer_id = ? AND is_active = ?", id, true).
		Update("is_active", false).Error
}

// ArchiveProject deactivates the project, its direct child projects, and
// its direct tasks. The cascade is intentionally shallow: grandchildren
// keep their flags.
func ArchiveProject(id string) error {
	var project models.Project
	if err := models.DB.First(&project, "id = ?", id).Error; err != nil {
		return errs.ErrProjectNotFound
	}

	project.IsActive = false
	if err := models.DB.Save(&project).Error; err != nil {
		return err
	}

	err := models.DB.Model(&models.Project{}).
		Where("parent_id = ? AND is_active = ?", id, true).
		Update("is_active", false).Error
	if err != nil {
		return err
	}

	return models.DB.Model(&models.Task{}).
		Where("project_id = ? AND is_active = ?", id, true).
		Update("is_active", false).Error
}

// ArchiveTask deactivates a single task.
func ArchiveTask(id string) error {
	var task models.Task
	if err := models.DB.First(&task, "id = ?", id).Error; err != nil {
		return errs.ErrTaskNotFound
	}

	task.IsActive = false
	return models.DB.Save(&task).Error
}

// DeactivateUser flips the user's active flag. Historical time entries
// stay attached.
func DeactivateUser(id string) error {
	var user models.User
	if err := models.DB.First(&user, "id = ?", id).Error; err != nil {
		return errs.ErrUserNotFound
	}

	user.IsActive = false
	return models.DB.Save(&user).Error
}
