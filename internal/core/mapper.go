package core

import "taskboard/internal/repository"

func toUserRecord(user repository.User) UserRecord {
	roles := make([]Role, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, Role(r))
	}

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Password: user.PasswordHash,
		Roles:    roles,
	}
}

func toProjectRecord(project repository.Project) ProjectRecord {
	tasks := make([]TaskRecord, 0, len(project.Tasks))
	for _, t := range project.Tasks {
		tasks = append(tasks, TaskRecord{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Status:      TaskStatus(t.Status),
		})
	}

	return ProjectRecord{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatorID:   project.CreatorID,
		Tasks:       tasks,
	}
}

func rolesToStrings(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
