package jwt_test

import (
	"strings"
	tokenIssuer "taskboard/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service   *tokenIssuer.JWTService
		tokenInfo tokenIssuer.TokenInfo
		signed    string
		err       error
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		tokenInfo = tokenIssuer.TokenInfo{
			UserName:   "testuser",
			Subject:    "c1b4a7a2-5d3e-4b8e-9a55-2b1f0f4b9c11",
			Roles:      []string{"USER"},
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	JustBeforeEach(func() {
		signed, err = service.Sign(service.Generate(tokenInfo))
		Expect(err).NotTo(HaveOccurred())
	})

	When("the token is valid", func() {
		It("should return the identity claims", func() {
			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal(tokenInfo.Subject))
			Expect(claims["username"]).To(Equal(tokenInfo.UserName))
			Expect(claims["roles"]).To(ConsistOf("USER"))
		})

		It("should be signed with HS512", func() {
			token := service.Generate(tokenInfo)
			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))
		})
	})

	When("the token has expired", func() {
		BeforeEach(func() {
			tokenIssuer.TimeNow = func() time.Time {
				return time.Now().Add(-2 * time.Hour)
			}
		})

		It("should return token expired error", func() {
			tokenIssuer.TimeNow = time.Now
			_, err := service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})
	})

	When("the token is signed with another secret", func() {
		It("should return token not valid error", func() {
			other := tokenIssuer.NewJWTService([]byte("other-secret"))
			_, err := other.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token payload is tampered with", func() {
		It("should return token not valid error", func() {
			parts := strings.Split(signed, ".")
			parts[1] = parts[1] + "x"
			_, err := service.Validate(strings.Join(parts, "."))
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token is garbage", func() {
		It("should return token not valid error", func() {
			_, err := service.Validate("not-a-token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
