package core_test

import (
	"context"
	"errors"
	"taskboard/internal/core"
	"taskboard/internal/core/fake"
	"taskboard/internal/repository"
	tokenIssuer "taskboard/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthService", func() {
	var (
		fakeUsers  *fake.UserRepository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		authService *core.AuthService

		fakeErr error
	)

	BeforeEach(func() {
		fakeUsers = new(fake.UserRepository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		authService = core.NewAuthService(fakeLogger, fakeUsers, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = authService.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					Roles:        []string{"USER"},
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.jwt.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.jwt.token"))
			})

			It("should look the user up by username", func() {
				Expect(fakeUsers.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeUsers.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))
			})

			It("should generate the token from the user's identity", func() {
				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserName:   authMsg.Username,
					Subject:    userId,
					Roles:      []string{"USER"},
					Expiration: time.Hour,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(token).To(BeEmpty())
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("fetching the user fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(token).To(BeEmpty())
			})
		})

		When("password is incorrect", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(token).To(BeEmpty())
				Expect(fakeJWT.SignCallCount()).To(Equal(0))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Identify", func() {
		var (
			identity core.Identity
			err      error
		)

		JustBeforeEach(func() {
			identity, err = authService.Identify("some.jwt.token")
		})

		When("the token carries valid claims", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":      "user-1",
					"username": "alice",
					"roles":    []interface{}{"USER", "ADMIN"},
				}, nil)
			})

			It("should return the identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity).To(Equal(core.Identity{
					UserID:   "user-1",
					Username: "alice",
					Roles:    []core.Role{core.RoleUser, core.RoleAdmin},
				}))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("some.jwt.token"))
			})
		})

		When("validation fails", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			})

			It("should return the validation error", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the subject is missing", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"roles": []interface{}{"USER"},
				}, nil)
			})

			It("should return invalid claims error", func() {
				Expect(err).To(MatchError(core.ErrInvalidClaims))
			})
		})

		When("the roles claim is missing", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub": "user-1",
				}, nil)
			})

			It("should return invalid claims error", func() {
				Expect(err).To(MatchError(core.ErrInvalidClaims))
			})
		})

		When("a role is not a string", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":   "user-1",
					"roles": []interface{}{42},
				}, nil)
			})

			It("should return invalid claims error", func() {
				Expect(err).To(MatchError(core.ErrInvalidClaims))
			})
		})
	})
})
