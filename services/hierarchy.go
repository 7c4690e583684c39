package services

import (
	"timetracker/api/errs"
	"timetracker/models"
)

// ProjectHierarchy returns the ids of the given project and every
// descendant at any depth. Breadth-first over the parent_id relation with
// a visited set: an id is enqueued at most once, so the walk terminates
// even if the stored edges contain a cycle. An unknown or childless root
// yields a singleton set.
func ProjectHierarchy(rootID string) ([]string, error) {
	visited := map[string]bool{rootID: true}
	ids := []string{rootID}
	queue := []string{rootID}

	for len(queue) > 0 {
		parentID := queue[0]
		queue = queue[1:]

		var childIDs []string
		err := models.DB.Model(&models.Project{}).
			Where("parent_id = ?", parentID).
			Pluck("id", &childIDs).Error
		if err != nil {
			return nil, err
		}

		for _, id := range childIDs {
			if visited[id] {
				continue
			}
			visited[id] = true
			ids = append(ids, id)
			queue = append(queue, id)
		}
	}

	return ids, nil
}

// ProjectTree loads a project together with its nested child subtree,
// children ordered by name at each level. The visited set guards against
// malformed parent edges the same way ProjectHierarchy does.
func ProjectTree(id string) (*models.Project, error) {
	var project models.Project
	if err := models.DB.Preload("Customer").First(&project, "id = ?", id).Error; err != nil {
		return nil, errs.ErrProjectNotFound
	}

	children, err := loadChildren(id, map[string]bool{id: true})
	if err != nil {
		return nil, err
	}
	project.Children = children
	return &project, nil
}

func loadChildren(parentID string, visited map[string]bool) ([]models.Project, error) {
	var children []models.Project
	err := models.DB.Preload("Customer").
		Where("parent_id = ?", parentID).
		Order("name").
		Find(&children).Error
	if err != nil {
		return nil, err
	}

	result := make([]models.Project, 0, len(children))
	for _, child := range children {
		if visited[child.ID] {
			continue
		}
		visited[child.ID] = true
		sub, err := loadChildren(child.ID, visited)
		if err != nil {
			return nil, err
		}
		child.Children = sub
		result = append(result, child)
	}
	return result, nil
}
