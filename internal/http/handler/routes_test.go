package handler_test

import (
	"net/http"
	"net/http/httptest"
	"taskboard/internal/core"
	"taskboard/internal/http/handler"
	"taskboard/internal/http/handler/fake"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Routes", func() {
	var (
		mux      *http.ServeMux
		identity *core.Identity
	)

	serve := func(method, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, nil)
		if identity != nil {
			req = req.WithContext(middleware.WithIdentity(req.Context(), *identity))
		}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		users := new(fake.UserService)
		users.GetUsersReturns([]core.UserRecord{}, nil)
		projects := new(fake.ProjectService)
		projects.GetProjectsReturns([]core.ProjectRecord{}, nil)

		guard := middleware.NewRoleGuard(logger)
		mux = http.NewServeMux()
		for _, route := range handler.Routes(
			handler.NewAuthHandler(logger, payload.Decoder{}, new(fake.AuthService)),
			handler.NewUserHandler(logger, payload.Decoder{}, users),
			handler.NewProjectHandler(logger, payload.Decoder{}, projects),
		) {
			mux.Handle(route.Pattern, guard.Require(route.Role, route.Handle))
		}

		identity = nil
	})

	It("should reject anonymous callers with 401", func() {
		Expect(serve("GET", "/projects").Code).To(Equal(http.StatusUnauthorized))
		Expect(serve("GET", "/users").Code).To(Equal(http.StatusUnauthorized))
	})

	It("should keep health public", func() {
		Expect(serve("GET", "/health").Code).To(Equal(http.StatusOK))
	})

	When("the caller is a USER", func() {
		BeforeEach(func() {
			identity = &core.Identity{UserID: "u1", Roles: []core.Role{core.RoleUser}}
		})

		It("should allow project routes", func() {
			Expect(serve("GET", "/projects").Code).To(Equal(http.StatusOK))
		})

		It("should forbid admin routes", func() {
			Expect(serve("GET", "/users").Code).To(Equal(http.StatusForbidden))
		})
	})

	When("the caller is an ADMIN", func() {
		BeforeEach(func() {
			identity = &core.Identity{UserID: "a1", Roles: []core.Role{core.RoleAdmin}}
		})

		It("should allow admin routes", func() {
			Expect(serve("GET", "/users").Code).To(Equal(http.StatusOK))
		})

		It("should forbid project routes", func() {
			Expect(serve("GET", "/projects").Code).To(Equal(http.StatusForbidden))
		})
	})

	It("should route task paths with both ids", func() {
		identity = &core.Identity{UserID: "u1", Roles: []core.Role{core.RoleUser}}
		w := serve("DELETE", "/projects/0b0c7a1e-3d7c-4a4e-9a59-4a0f5e4d2c11/tasks/not-a-uuid")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
