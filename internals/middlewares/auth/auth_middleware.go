package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"personavix_backend/internals/constants"
	userModel "personavix_backend/internals/features/users/user/model"
	helper "personavix_backend/internals/helpers"
	authHelper "personavix_backend/internals/helpers/auth"
)

// IdentityResolver finds the live user behind a verified token.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, claims *authHelper.Claims) (*userModel.UserModel, error)
}

// AuthMiddleware verifies the bearer token, re-reads the user from the
// database and stores an AuthContext for the rest of the chain.
func AuthMiddleware(tokens *authHelper.TokenService, users IdentityResolver, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c)
		if err != nil {
			return err
		}

		claims, err := tokens.Verify(raw)
		switch {
		case errors.Is(err, authHelper.ErrTokenExpired):
			return helper.NewUnauthenticated(constants.MsgTokenExpired)
		case errors.Is(err, authHelper.ErrTokenNoIdentity):
			return helper.NewUnauthenticated(constants.MsgCouldNotValidate)
		case err != nil:
			log.Debug("token rejected", "error", err, "reqid", c.Locals("reqid"))
			return helper.NewUnauthenticated(constants.MsgTokenInvalid)
		}

		user, err := users.ResolveIdentity(c.UserContext(), claims)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 404 dari langkah autentikasi memang disengaja
				return &helper.AppError{
					Kind:    helper.KindNotFound,
					Message: constants.UserNotFoundByIdentity(claims.Email),
					Err:     err,
				}
			}
			return helper.NewInternal(constants.MsgErrorGettingUser, err)
		}

		authHelper.SetAuthContext(c, authHelper.AuthContext{
			UserID:        user.ID,
			Identity:      claims.Email,
			Permission:    user.Permission,
			AccessFlag:    user.AccessFlag,
			IsLinkSession: claims.IsUniqueAccessLink,
		})
		return c.Next()
	}
}
