package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"taskboard/internal/core"
	corefake "taskboard/internal/core/fake"
	"taskboard/internal/http/handler"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/payload"
	"taskboard/internal/repository"
	"taskboard/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Project workflow through the full request chain", func() {
	const passwordHash = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"

	var (
		app          http.Handler
		fakeUsers    *corefake.UserRepository
		fakeProjects *corefake.ProjectRepository
	)

	send := func(method, target, body, token string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, reader)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		app.ServeHTTP(w, req)
		return w
	}

	login := func(password string) *httptest.ResponseRecorder {
		return send("POST", "/auth/login", `{"username":"alice","password":"`+password+`"}`, "")
	}

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()

		fakeUsers = new(corefake.UserRepository)
		fakeUsers.GetUserByUsernameReturns(repository.User{
			ID:           "u-1",
			Username:     "alice",
			PasswordHash: passwordHash,
			Roles:        []string{"USER"},
		}, nil)
		fakeProjects = new(corefake.ProjectRepository)
		fakeProjects.GetProjectByIDStub = func(_ context.Context, id string) (repository.Project, error) {
			project := repository.Project{ID: id, Name: "Apollo", Description: "moon", CreatorID: "u-1"}
			if fakeProjects.AddTaskCallCount() > 0 {
				_, task := fakeProjects.AddTaskArgsForCall(0)
				project.Tasks = []repository.Task{task}
			}
			return project, nil
		}

		authService := core.NewAuthService(logger, fakeUsers, jwt.NewJWTService([]byte("scenario-secret")))
		decoder := payload.Decoder{}

		mux := http.NewServeMux()
		guard := middleware.NewRoleGuard(logger)
		for _, route := range handler.Routes(
			handler.NewAuthHandler(logger, decoder, authService),
			handler.NewUserHandler(logger, decoder, core.NewUserService(logger, fakeUsers)),
			handler.NewProjectHandler(logger, decoder, core.NewProjectService(logger, fakeProjects)),
		) {
			mux.Handle(route.Pattern, guard.Require(route.Role, route.Handle))
		}
		app = middleware.NewTokenMiddleware(logger, authService).DecodeToken(mux)
	})

	It("should not issue a token for a wrong password", func() {
		w := login("wrongpass")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).NotTo(ContainSubstring("access_token"))
	})

	It("should reject anonymous and under-privileged callers", func() {
		Expect(send("GET", "/projects", "", "").Code).To(Equal(http.StatusUnauthorized))
		Expect(send("GET", "/projects", "", "not-a-token").Code).To(Equal(http.StatusUnauthorized))

		var auth map[string]string
		Expect(json.NewDecoder(login("testpass").Body).Decode(&auth)).To(Succeed())

		Expect(send("GET", "/users", "", auth["access_token"]).Code).To(Equal(http.StatusForbidden))
	})

	It("should carry a user from login through project and task management", func() {
		w := login("testpass")
		Expect(w.Code).To(Equal(http.StatusOK))
		var auth map[string]string
		Expect(json.NewDecoder(w.Body).Decode(&auth)).To(Succeed())
		token := auth["access_token"]
		Expect(token).NotTo(BeEmpty())

		By("validating pagination")
		Expect(send("GET", "/projects?from=-1", "", token).Code).To(Equal(http.StatusBadRequest))
		Expect(send("GET", "/projects?size=0", "", token).Code).To(Equal(http.StatusBadRequest))
		Expect(send("GET", "/projects", "", token).Code).To(Equal(http.StatusOK))
		_, offset, limit := fakeProjects.GetProjectsArgsForCall(0)
		Expect(offset).To(Equal(0))
		Expect(limit).To(Equal(core.DefaultPageSize))

		By("creating a project owned by the token subject")
		w = send("POST", "/projects", `{"name":"Apollo","description":"moon"}`, token)
		Expect(w.Code).To(Equal(http.StatusCreated))
		var project core.ProjectRecord
		Expect(json.NewDecoder(w.Body).Decode(&project)).To(Succeed())
		Expect(project.CreatorID).To(Equal("u-1"))
		_, stored := fakeProjects.CreateProjectArgsForCall(0)
		Expect(stored.CreatorID).To(Equal("u-1"))

		By("adding a task")
		w = send("POST", "/projects/"+project.ID+"/tasks", `{"name":"land","description":"softly","status":"TODO"}`, token)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(json.NewDecoder(w.Body).Decode(&project)).To(Succeed())
		Expect(project.Tasks).To(HaveLen(1))
		task := project.Tasks[0]
		Expect(task.Status).To(Equal(core.TaskStatusTodo))

		By("updating the task status")
		w = send("PATCH", "/projects/"+project.ID+"/tasks/"+task.ID, `{"status":"DONE"}`, token)
		Expect(w.Code).To(Equal(http.StatusNoContent))
		_, taskID, status := fakeProjects.UpdateTaskStatusArgsForCall(0)
		Expect(taskID).To(Equal(task.ID))
		Expect(status).To(Equal("DONE"))

		By("deleting the task and the project")
		Expect(send("DELETE", "/projects/"+project.ID+"/tasks/"+task.ID, "", token).Code).To(Equal(http.StatusNoContent))
		Expect(send("DELETE", "/projects/"+project.ID, "", token).Code).To(Equal(http.StatusNoContent))
		_, deleted := fakeProjects.DeleteProjectArgsForCall(0)
		Expect(deleted).To(Equal(project.ID))
	})
})
