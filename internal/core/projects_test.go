package core_test

import (
	"context"
	"errors"
	"taskboard/internal/core"
	"taskboard/internal/core/fake"
	"taskboard/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ProjectService", func() {
	var (
		fakeRepo *fake.ProjectRepository
		ctx      context.Context

		projectService *core.ProjectService

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.ProjectRepository)
		ctx = context.Background()

		projectService = core.NewProjectService(zap.NewNop().Sugar(), fakeRepo)

		fakeErr = errors.New("fake error")
	})

	Describe("CreateProject", func() {
		var (
			creator core.Identity
			record  core.ProjectRecord
			err     error
		)

		BeforeEach(func() {
			creator = core.Identity{UserID: "user-1", Username: "alice", Roles: []core.Role{core.RoleUser}}
		})

		JustBeforeEach(func() {
			record, err = projectService.CreateProject(ctx, creator, core.ProjectMessage{
				Name:        "Apollo",
				Description: "moon",
			})
		})

		It("should store the project owned by the caller", func() {
			Expect(err).NotTo(HaveOccurred())
			_, stored := fakeRepo.CreateProjectArgsForCall(0)
			Expect(stored.ID).NotTo(BeEmpty())
			Expect(stored.CreatorID).To(Equal("user-1"))
			Expect(record.ID).To(Equal(stored.ID))
			Expect(record.CreatorID).To(Equal("user-1"))
			Expect(record.Tasks).NotTo(BeNil())
			Expect(record.Tasks).To(BeEmpty())
		})

		When("there is no identity", func() {
			BeforeEach(func() {
				creator = core.Identity{}
			})

			It("should return missing identity error", func() {
				Expect(err).To(MatchError(core.ErrMissingIdentity))
				Expect(fakeRepo.CreateProjectCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateProjectReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetProjects", func() {
		It("should map projects with their tasks", func() {
			fakeRepo.GetProjectsReturns([]repository.Project{
				{ID: "p1", Name: "one", Tasks: []repository.Task{{ID: "t1", Name: "task", Status: "DONE"}}},
				{ID: "p2", Name: "two"},
			}, nil)

			records, err := projectService.GetProjects(ctx, core.Page{Offset: 0, Limit: 25})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].Tasks).To(Equal([]core.TaskRecord{{ID: "t1", Name: "task", Status: core.TaskStatusDone}}))
			Expect(records[1].Tasks).To(BeEmpty())

			_, offset, limit := fakeRepo.GetProjectsArgsForCall(0)
			Expect(offset).To(Equal(0))
			Expect(limit).To(Equal(25))
		})

		It("should return the store error", func() {
			fakeRepo.GetProjectsReturns(nil, fakeErr)

			_, err := projectService.GetProjects(ctx, core.Page{Limit: 25})
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("GetProject", func() {
		It("should return not found for a missing project", func() {
			fakeRepo.GetProjectByIDReturns(repository.Project{}, repository.ErrProjectNotFound)

			_, err := projectService.GetProject(ctx, "missing")
			Expect(err).To(MatchError(core.ErrProjectNotFound))
		})
	})

	Describe("UpdateProject", func() {
		It("should pass the partial update through", func() {
			name := "renamed"
			err := projectService.UpdateProject(ctx, "p1", core.ProjectUpdateMessage{Name: &name})
			Expect(err).NotTo(HaveOccurred())

			_, id, update := fakeRepo.UpdateProjectArgsForCall(0)
			Expect(id).To(Equal("p1"))
			Expect(*update.Name).To(Equal("renamed"))
			Expect(update.Description).To(BeNil())
		})

		It("should return not found for a missing project", func() {
			fakeRepo.UpdateProjectReturns(repository.ErrProjectNotFound)

			err := projectService.UpdateProject(ctx, "p1", core.ProjectUpdateMessage{})
			Expect(err).To(MatchError(core.ErrProjectNotFound))
		})
	})

	Describe("DeleteProject", func() {
		It("should delete the project", func() {
			Expect(projectService.DeleteProject(ctx, "p1")).To(Succeed())
			_, id := fakeRepo.DeleteProjectArgsForCall(0)
			Expect(id).To(Equal("p1"))
		})

		It("should return not found for a missing project", func() {
			fakeRepo.DeleteProjectReturns(repository.ErrProjectNotFound)
			Expect(projectService.DeleteProject(ctx, "p1")).To(MatchError(core.ErrProjectNotFound))
		})
	})

	Describe("AddTask", func() {
		var (
			record core.ProjectRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = projectService.AddTask(ctx, "p1", core.TaskMessage{
				Name:        "land",
				Description: "softly",
				Status:      core.TaskStatusTodo,
			})
		})

		When("the project exists", func() {
			BeforeEach(func() {
				fakeRepo.GetProjectByIDStub = func(_ context.Context, id string) (repository.Project, error) {
					_, task := fakeRepo.AddTaskArgsForCall(0)
					return repository.Project{ID: id, Name: "Apollo", Tasks: []repository.Task{task}}, nil
				}
			})

			It("should store the task under the project", func() {
				Expect(err).NotTo(HaveOccurred())
				_, task := fakeRepo.AddTaskArgsForCall(0)
				Expect(task.ID).NotTo(BeEmpty())
				Expect(task.ProjectID).To(Equal("p1"))
				Expect(task.Status).To(Equal("TODO"))
			})

			It("should return the updated project", func() {
				Expect(record.ID).To(Equal("p1"))
				Expect(record.Tasks).To(HaveLen(1))
				Expect(record.Tasks[0].Name).To(Equal("land"))
			})
		})

		When("the project does not exist", func() {
			BeforeEach(func() {
				fakeRepo.AddTaskReturns(repository.ErrProjectNotFound)
			})

			It("should return project not found", func() {
				Expect(err).To(MatchError(core.ErrProjectNotFound))
				Expect(fakeRepo.GetProjectByIDCallCount()).To(Equal(0))
			})
		})
	})

	Describe("UpdateTaskStatus", func() {
		It("should set any status", func() {
			Expect(projectService.UpdateTaskStatus(ctx, "t1", core.TaskStatusDone)).To(Succeed())
			Expect(projectService.UpdateTaskStatus(ctx, "t1", core.TaskStatusTodo)).To(Succeed())

			_, id, status := fakeRepo.UpdateTaskStatusArgsForCall(1)
			Expect(id).To(Equal("t1"))
			Expect(status).To(Equal("TODO"))
		})

		It("should return task not found for a missing task", func() {
			fakeRepo.UpdateTaskStatusReturns(repository.ErrTaskNotFound)
			Expect(projectService.UpdateTaskStatus(ctx, "t1", core.TaskStatusDone)).To(MatchError(core.ErrTaskNotFound))
		})
	})

	Describe("DeleteTask", func() {
		It("should return task not found for a missing task", func() {
			fakeRepo.DeleteTaskReturns(repository.ErrTaskNotFound)
			Expect(projectService.DeleteTask(ctx, "t1")).To(MatchError(core.ErrTaskNotFound))
		})

		It("should delete by task id", func() {
			Expect(projectService.DeleteTask(ctx, "t1")).To(Succeed())
			_, id := fakeRepo.DeleteTaskArgsForCall(0)
			Expect(id).To(Equal("t1"))
		})
	})
})
