package repository

import (
	"context"
	"errors"
	"fmt"
	"taskboard/internal/db"
)

type ProjectRepository struct {
	db Storage
}

func NewProjectRepository(db Storage) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project Project) error {
	project.Tasks = nil
	err := r.db.Create(ctx, &project)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

func (r *ProjectRepository) GetProjects(ctx context.Context, offset, limit int) ([]Project, error) {
	projects := []Project{}
	err := r.db.GetPage(ctx, offset, limit, &projects)
	if err != nil {
		return nil, fmt.Errorf("get projects page: %w", err)
	}

	if len(projects) == 0 {
		return projects, nil
	}

	projectIDs := make([]string, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}

	tasks, err := r.getTasks(ctx, projectIDs)
	if err != nil {
		return nil, err
	}

	tasksByProject := make(map[string][]Task, len(projects))
	for _, t := range tasks {
		tasksByProject[t.ProjectID] = append(tasksByProject[t.ProjectID], t)
	}
	for i := range projects {
		projects[i].Tasks = tasksByProject[projects[i].ID]
	}

	return projects, nil
}

func (r *ProjectRepository) GetProjectByID(ctx context.Context, id string) (Project, error) {
	project, err := r.getProject(ctx, id)
	if err != nil {
		return Project{}, err
	}

	tasks, err := r.getTasks(ctx, []string{id})
	if err != nil {
		return Project{}, err
	}
	project.Tasks = tasks

	return project, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, id string, update ProjectUpdate) error {
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}

	if len(fields) == 0 {
		_, err := r.getProject(ctx, id)
		return err
	}

	affected, err := r.db.UpdateBy(ctx, "id", id, &Project{}, fields)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// DeleteProject removes the project's tasks and then the project itself. The
// two deletes are not atomic: a failure in between leaves the project without
// tasks, and deleting it again completes the removal.
func (r *ProjectRepository) DeleteProject(ctx context.Context, id string) error {
	if _, err := r.getProject(ctx, id); err != nil {
		return err
	}

	_, err := r.db.DeleteBy(ctx, "project_id", id, &Task{})
	if err != nil {
		return fmt.Errorf("delete project tasks: %w", err)
	}

	affected, err := r.db.DeleteBy(ctx, "id", id, &Project{})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *ProjectRepository) AddTask(ctx context.Context, task Task) error {
	if _, err := r.getProject(ctx, task.ProjectID); err != nil {
		return err
	}

	err := r.db.Create(ctx, &task)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *ProjectRepository) UpdateTaskStatus(ctx context.Context, taskID string, status string) error {
	affected, err := r.db.UpdateBy(ctx, "id", taskID, &Task{}, map[string]any{"status": status})
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *ProjectRepository) DeleteTask(ctx context.Context, taskID string) error {
	affected, err := r.db.DeleteBy(ctx, "id", taskID, &Task{})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *ProjectRepository) getProject(ctx context.Context, id string) (Project, error) {
	var project Project

	err := r.db.GetOneBy(ctx, "id", id, &project)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Project{}, ErrProjectNotFound
		}
		return Project{}, fmt.Errorf("get project by id: %w", err)
	}

	return project, nil
}

func (r *ProjectRepository) getTasks(ctx context.Context, projectIDs []string) ([]Task, error) {
	tasks := []Task{}
	err := r.db.GetAllBy(ctx, "project_id", projectIDs, &tasks)
	if err != nil {
		return nil, fmt.Errorf("get project tasks: %w", err)
	}

	return tasks, nil
}
