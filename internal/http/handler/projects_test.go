package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"taskboard/internal/core"
	"taskboard/internal/http/handler"
	"taskboard/internal/http/handler/fake"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ProjectHandler", func() {
	const (
		projectID = "0b0c7a1e-3d7c-4a4e-9a59-4a0f5e4d2c11"
		taskID    = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	)

	var (
		ph          *handler.ProjectHandler
		fakeService *fake.ProjectService
		w           *httptest.ResponseRecorder
		req         *http.Request
		caller      core.Identity
	)

	withIdentity := func(r *http.Request) *http.Request {
		return r.WithContext(middleware.WithIdentity(r.Context(), caller))
	}

	BeforeEach(func() {
		fakeService = new(fake.ProjectService)
		w = httptest.NewRecorder()
		caller = core.Identity{UserID: "creator-1", Username: "alice", Roles: []core.Role{core.RoleUser}}
		ph = handler.NewProjectHandler(zap.NewNop().Sugar(), payload.Decoder{}, fakeService)
	})

	Describe("HandleCreateProject", func() {
		BeforeEach(func() {
			req = withIdentity(httptest.NewRequest("POST", "/projects", strings.NewReader(`{"name":"Apollo","description":"moon"}`)))
			fakeService.CreateProjectReturns(core.ProjectRecord{
				ID:          projectID,
				Name:        "Apollo",
				Description: "moon",
				CreatorID:   "creator-1",
				Tasks:       []core.TaskRecord{},
			}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleCreateProject(w, req)
		})

		It("should respond 201 with the project", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Body.String()).To(MatchJSON(`{"id":"` + projectID + `","name":"Apollo","description":"moon","creatorId":"creator-1","tasks":[]}`))

			_, creator, msg := fakeService.CreateProjectArgsForCall(0)
			Expect(creator).To(Equal(caller))
			Expect(msg).To(Equal(core.ProjectMessage{Name: "Apollo", Description: "moon"}))
		})

		When("there is no identity", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/projects", strings.NewReader(`{"name":"Apollo","description":"moon"}`))
			})

			It("should respond 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.CreateProjectCallCount()).To(Equal(0))
			})
		})

		When("the name is too short", func() {
			BeforeEach(func() {
				req = withIdentity(httptest.NewRequest("POST", "/projects", strings.NewReader(`{"name":"A","description":"moon"}`)))
			})

			It("should respond 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleGetProjects", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/projects?from=2&size=3", nil)
			fakeService.GetProjectsReturns([]core.ProjectRecord{{ID: projectID, Tasks: []core.TaskRecord{}}}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleGetProjects(w, req)
		})

		It("should pass the page through", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, page := fakeService.GetProjectsArgsForCall(0)
			Expect(page).To(Equal(core.Page{Offset: 2, Limit: 3}))

			var projects []core.ProjectRecord
			Expect(json.NewDecoder(w.Body).Decode(&projects)).To(Succeed())
			Expect(projects).To(HaveLen(1))
		})

		When("from is negative", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/projects?from=-1", nil)
			})

			It("should respond 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetProjectsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetProject", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/projects/"+projectID, nil)
			req.SetPathValue("id", projectID)
		})

		JustBeforeEach(func() {
			ph.HandleGetProject(w, req)
		})

		When("the project does not exist", func() {
			BeforeEach(func() {
				fakeService.GetProjectReturns(core.ProjectRecord{}, core.ErrProjectNotFound)
			})

			It("should respond 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is malformed", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "123")
			})

			It("should respond 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleUpdateProject", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("PATCH", "/projects/"+projectID, strings.NewReader(`{"description":"mars"}`))
			req.SetPathValue("id", projectID)
		})

		JustBeforeEach(func() {
			ph.HandleUpdateProject(w, req)
		})

		It("should respond 204", func() {
			Expect(w.Code).To(Equal(http.StatusNoContent))
			_, id, msg := fakeService.UpdateProjectArgsForCall(0)
			Expect(id).To(Equal(projectID))
			Expect(msg.Name).To(BeNil())
			Expect(*msg.Description).To(Equal("mars"))
		})

		When("an unknown field is sent", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("PATCH", "/projects/"+projectID, strings.NewReader(`{"owner":"me"}`))
				req.SetPathValue("id", projectID)
			})

			It("should respond 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleDeleteProject", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/projects/"+projectID, nil)
			req.SetPathValue("id", projectID)
		})

		JustBeforeEach(func() {
			ph.HandleDeleteProject(w, req)
		})

		It("should respond 204", func() {
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		When("the project does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteProjectReturns(core.ErrProjectNotFound)
			})

			It("should respond 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleAddTask", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/projects/"+projectID+"/tasks", strings.NewReader(`{"name":"land","description":"softly","status":"TODO"}`))
			req.SetPathValue("id", projectID)
			fakeService.AddTaskReturns(core.ProjectRecord{
				ID:    projectID,
				Tasks: []core.TaskRecord{{ID: taskID, Name: "land", Description: "softly", Status: core.TaskStatusTodo}},
			}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleAddTask(w, req)
		})

		It("should respond 201 with the updated project", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))
			var project core.ProjectRecord
			Expect(json.NewDecoder(w.Body).Decode(&project)).To(Succeed())
			Expect(project.Tasks).To(HaveLen(1))

			_, id, msg := fakeService.AddTaskArgsForCall(0)
			Expect(id).To(Equal(projectID))
			Expect(msg.Status).To(Equal(core.TaskStatusTodo))
		})

		When("the project does not exist", func() {
			BeforeEach(func() {
				fakeService.AddTaskReturns(core.ProjectRecord{}, core.ErrProjectNotFound)
			})

			It("should respond 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the status is unknown", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/projects/"+projectID+"/tasks", strings.NewReader(`{"name":"land","description":"softly","status":"LATER"}`))
				req.SetPathValue("id", projectID)
			})

			It("should respond 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AddTaskCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleUpdateTaskStatus", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("PATCH", "/projects/"+projectID+"/tasks/"+taskID, strings.NewReader(`{"status":"DONE"}`))
			req.SetPathValue("id", projectID)
			req.SetPathValue("taskId", taskID)
		})

		JustBeforeEach(func() {
			ph.HandleUpdateTaskStatus(w, req)
		})

		It("should respond 204", func() {
			Expect(w.Code).To(Equal(http.StatusNoContent))
			_, id, status := fakeService.UpdateTaskStatusArgsForCall(0)
			Expect(id).To(Equal(taskID))
			Expect(status).To(Equal(core.TaskStatusDone))
		})

		When("the task does not exist", func() {
			BeforeEach(func() {
				fakeService.UpdateTaskStatusReturns(core.ErrTaskNotFound)
			})

			It("should respond 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the task id is malformed", func() {
			BeforeEach(func() {
				req.SetPathValue("taskId", "abc")
			})

			It("should respond 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleDeleteTask", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/projects/"+projectID+"/tasks/"+taskID, nil)
			req.SetPathValue("id", projectID)
			req.SetPathValue("taskId", taskID)
		})

		JustBeforeEach(func() {
			ph.HandleDeleteTask(w, req)
		})

		It("should respond 204", func() {
			Expect(w.Code).To(Equal(http.StatusNoContent))
			_, id := fakeService.DeleteTaskArgsForCall(0)
			Expect(id).To(Equal(taskID))
		})

		When("the task does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteTaskReturns(core.ErrTaskNotFound)
			})

			It("should respond 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
