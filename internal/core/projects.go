package core

import (
	"context"
	"errors"
	"fmt"
	"taskboard/internal/repository"
	"taskboard/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProjectNotFound error = errors.New("project not found")
	ErrTaskNotFound    error = errors.New("task not found")
	ErrMissingIdentity error = errors.New("missing identity")
)

// ProjectService manages projects together with the tasks they own.
type ProjectService struct {
	logs *zap.SugaredLogger
	repo ProjectRepository
}

func NewProjectService(logger *zap.SugaredLogger, repo ProjectRepository) *ProjectService {
	return &ProjectService{
		logs: logger,
		repo: repo,
	}
}

// CreateProject stores a new project owned by the given identity.
func (s *ProjectService) CreateProject(ctx context.Context, creator Identity, msg ProjectMessage) (ProjectRecord, error) {
	if creator.UserID == "" {
		return ProjectRecord{}, ErrMissingIdentity
	}

	project := repository.Project{
		ID:          uuid.NewString(),
		Name:        msg.Name,
		Description: msg.Description,
		CreatorID:   creator.UserID,
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return ProjectRecord{}, fmt.Errorf("create project: %w", err)
	}

	s.logs.Infow("project created", "projectId", project.ID, "creatorId", project.CreatorID)
	return toProjectRecord(project), nil
}

func (s *ProjectService) GetProjects(ctx context.Context, page Page) ([]ProjectRecord, error) {
	projects, err := s.repo.GetProjects(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("get projects: %w", err)
	}

	records := make([]ProjectRecord, 0, len(projects))
	for _, p := range projects {
		records = append(records, toProjectRecord(p))
	}
	return records, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (ProjectRecord, error) {
	project, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		return ProjectRecord{}, projectError(err)
	}
	return toProjectRecord(project), nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, msg ProjectUpdateMessage) error {
	update := repository.ProjectUpdate{
		Name:        msg.Name,
		Description: msg.Description,
	}
	if err := s.repo.UpdateProject(ctx, id, update); err != nil {
		return projectError(err)
	}
	return nil
}

// DeleteProject deletes the project and every task it owns.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return projectError(err)
	}

	s.logs.Infow("project deleted", "projectId", id)
	return nil
}

// AddTask appends a task to the project and returns the updated project.
func (s *ProjectService) AddTask(ctx context.Context, projectID string, msg TaskMessage) (ProjectRecord, error) {
	task := repository.Task{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Name:        msg.Name,
		Description: msg.Description,
		Status:      string(msg.Status),
	}
	if err := s.repo.AddTask(ctx, task); err != nil {
		return ProjectRecord{}, projectError(err)
	}
	metrics.IncrementTaskOperation("create")

	return s.GetProject(ctx, projectID)
}

// UpdateTaskStatus sets the task status. Transitions are not restricted.
func (s *ProjectService) UpdateTaskStatus(ctx context.Context, taskID string, status TaskStatus) error {
	if err := s.repo.UpdateTaskStatus(ctx, taskID, string(status)); err != nil {
		return projectError(err)
	}
	metrics.IncrementTaskOperation("update_status")
	return nil
}

func (s *ProjectService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return projectError(err)
	}
	metrics.IncrementTaskOperation("delete")
	return nil
}

func projectError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProjectNotFound):
		return ErrProjectNotFound
	case errors.Is(err, repository.ErrTaskNotFound):
		return ErrTaskNotFound
	default:
		return fmt.Errorf("project repository: %w", err)
	}
}
