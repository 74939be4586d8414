package handler

import (
	"fmt"
	"net/http"
	"taskboard/internal/core"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/payload"

	"go.uber.org/zap"
)

type ProjectHandler struct {
	base
	projects ProjectService
}

func NewProjectHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, projectService ProjectService) *ProjectHandler {
	return &ProjectHandler{
		base: base{
			logs:             logger,
			requestValidator: requestValidator,
		},
		projects: projectService,
	}
}

func (h *ProjectHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.fail(w, "Could not create project", core.ErrMissingIdentity, CreateProject, requestId)
		return
	}

	var body payload.CreateProjectRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.reject(w, "Could not create project", fmt.Errorf("invalid request payload: %w", err), CreateProject, requestId)
		return
	}

	project, err := h.projects.CreateProject(r.Context(), identity, body.ToMessage())
	if err != nil {
		h.fail(w, "Could not create project", err, CreateProject, requestId)
		return
	}

	h.respond(w, project, http.StatusCreated, requestId)
}

func (h *ProjectHandler) HandleGetProjects(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	page, err := payload.ParsePageRequest(r.URL.Query())
	if err == nil {
		err = page.Validate()
	}
	if err != nil {
		h.reject(w, "Could not retrieve projects", fmt.Errorf("invalid pagination: %w", err), GetProjects, requestId)
		return
	}

	projects, err := h.projects.GetProjects(r.Context(), page.ToPage())
	if err != nil {
		h.fail(w, "Could not retrieve projects", err, GetProjects, requestId)
		return
	}

	h.respond(w, projects, http.StatusOK, requestId)
}

func (h *ProjectHandler) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id := r.PathValue("id")
	if err := payload.ValidateID(id); err != nil {
		h.reject(w, "Could not retrieve project", fmt.Errorf("invalid project id: %w", err), GetProject, requestId)
		return
	}

	project, err := h.projects.GetProject(r.Context(), id)
	if err != nil {
		h.fail(w, "Could not retrieve project", err, GetProject, requestId)
		return
	}

	h.respond(w, project, http.StatusOK, requestId)
}

func (h *ProjectHandler) HandleUpdateProject(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id := r.PathValue("id")
	if err := payload.ValidateID(id); err != nil {
		h.reject(w, "Could not update project", fmt.Errorf("invalid project id: %w", err), UpdateProject, requestId)
		return
	}

	var body payload.UpdateProjectRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.reject(w, "Could not update project", fmt.Errorf("invalid request payload: %w", err), UpdateProject, requestId)
		return
	}

	if err := h.projects.UpdateProject(r.Context(), id, body.ToMessage()); err != nil {
		h.fail(w, "Could not update project", err, UpdateProject, requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id := r.PathValue("id")
	if err := payload.ValidateID(id); err != nil {
		h.reject(w, "Could not delete project", fmt.Errorf("invalid project id: %w", err), DeleteProject, requestId)
		return
	}

	if err := h.projects.DeleteProject(r.Context(), id); err != nil {
		h.fail(w, "Could not delete project", err, DeleteProject, requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) HandleAddTask(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id := r.PathValue("id")
	if err := payload.ValidateID(id); err != nil {
		h.reject(w, "Could not add task", fmt.Errorf("invalid project id: %w", err), AddTask, requestId)
		return
	}

	var body payload.CreateTaskRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.reject(w, "Could not add task", fmt.Errorf("invalid request payload: %w", err), AddTask, requestId)
		return
	}

	project, err := h.projects.AddTask(r.Context(), id, body.ToMessage())
	if err != nil {
		h.fail(w, "Could not add task", err, AddTask, requestId)
		return
	}

	h.respond(w, project, http.StatusCreated, requestId)
}

// HandleUpdateTaskStatus changes a task's status. The task is addressed by its
// own id; the project id in the path is validated for shape only.
func (h *ProjectHandler) HandleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	taskID, err := pathIDs(r)
	if err != nil {
		h.reject(w, "Could not update task", err, UpdateTaskStatus, requestId)
		return
	}

	var body payload.UpdateTaskRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.reject(w, "Could not update task", fmt.Errorf("invalid request payload: %w", err), UpdateTaskStatus, requestId)
		return
	}

	if err := h.projects.UpdateTaskStatus(r.Context(), taskID, body.ToStatus()); err != nil {
		h.fail(w, "Could not update task", err, UpdateTaskStatus, requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	taskID, err := pathIDs(r)
	if err != nil {
		h.reject(w, "Could not delete task", err, DeleteTask, requestId)
		return
	}

	if err := h.projects.DeleteTask(r.Context(), taskID); err != nil {
		h.fail(w, "Could not delete task", err, DeleteTask, requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathIDs validates both ids of a task route and returns the task id.
func pathIDs(r *http.Request) (string, error) {
	if err := payload.ValidateID(r.PathValue("id")); err != nil {
		return "", fmt.Errorf("invalid project id: %w", err)
	}

	taskID := r.PathValue("taskId")
	if err := payload.ValidateID(taskID); err != nil {
		return "", fmt.Errorf("invalid task id: %w", err)
	}

	return taskID, nil
}
