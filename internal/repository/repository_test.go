package repository_test

import (
	"context"
	"errors"
	"taskboard/internal/db"
	"taskboard/internal/repository"
	"taskboard/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Migrate", func() {
	var fakeStorage *fake.Storage

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
	})

	When("migration succeeds", func() {
		It("should migrate users, projects and tasks", func() {
			Expect(repository.Migrate(fakeStorage)).To(Succeed())

			Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateModelsArgsForCall(0)
			Expect(tables).To(HaveLen(3))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
			Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Project{}))
			Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Task{}))
		})
	})

	When("migration fails", func() {
		BeforeEach(func() {
			fakeStorage.MigrateModelsReturns(errors.New("migration error"))
		})

		It("should return an error", func() {
			Expect(repository.Migrate(fakeStorage)).To(MatchError("migrate table(s): migration error"))
		})
	})
})

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
		testUser    repository.User
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewUserRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		testUser = repository.User{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "hashed_password",
			Roles:        []string{"USER"},
		}
	})

	Describe("CreateUser", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, testUser)
		})

		When("the insert succeeds", func() {
			It("should store the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record).To(Equal(&testUser))
			})
		})

		When("the username is already stored", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicateKey)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "alice")
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					user := dest.(*repository.User)
					*user = testUser
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(testUser))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByID", func() {
		It("should look the user up by id", func() {
			_, err := repo.GetUserByID(ctx, testUser.ID)
			Expect(err).NotTo(HaveOccurred())
			_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(col).To(Equal("id"))
			Expect(val).To(Equal(testUser.ID))
		})
	})

	Describe("GetUsers", func() {
		var (
			users []repository.User
			err   error
		)

		JustBeforeEach(func() {
			users, err = repo.GetUsers(ctx, 10, 5)
		})

		When("the page is read", func() {
			BeforeEach(func() {
				fakeStorage.GetPageStub = func(ctx context.Context, offset, limit int, dest any) error {
					users := dest.(*[]repository.User)
					*users = []repository.User{testUser}
					return nil
				}
			})

			It("should return the users with the requested window", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(ConsistOf(testUser))
				_, offset, limit, _ := fakeStorage.GetPageArgsForCall(0)
				Expect(offset).To(Equal(10))
				Expect(limit).To(Equal(5))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetPageReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateUser", func() {
		var (
			update repository.UserUpdate
			err    error
		)

		BeforeEach(func() {
			username := "bob"
			hash := "new_hash"
			update = repository.UserUpdate{Username: &username, PasswordHash: &hash}
			fakeStorage.UpdateByReturns(1, nil)
		})

		JustBeforeEach(func() {
			err = repo.UpdateUser(ctx, testUser.ID, update)
		})

		When("the user exists", func() {
			It("should update only the provided fields", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.UpdateByCallCount()).To(Equal(1))
				_, col, val, model, fields := fakeStorage.UpdateByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(testUser.ID))
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(fields).To(Equal(map[string]any{
					"username":      "bob",
					"password_hash": "new_hash",
				}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(0, nil)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the new username is taken", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(0, db.ErrDuplicateKey)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("the update is empty", func() {
			BeforeEach(func() {
				update = repository.UserUpdate{}
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should only check the user exists", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
				Expect(fakeStorage.UpdateByCallCount()).To(Equal(0))
				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
			})
		})
	})

	Describe("DeleteUser", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteUser(ctx, testUser.ID)
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(1, nil)
			})

			It("should delete by id", func() {
				Expect(err).NotTo(HaveOccurred())
				_, col, val, model := fakeStorage.DeleteByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(testUser.ID))
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("the user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(0, nil)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
