package details

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	linkRepo "personavix_backend/internals/features/unique_access_links/repository"
	userRepo "personavix_backend/internals/features/users/user/repository"
	userService "personavix_backend/internals/features/users/user/service"
	authHelper "personavix_backend/internals/helpers/auth"
)

// Deps is what every feature needs to build its controllers.
type Deps struct {
	DB     *gorm.DB
	Log    *slog.Logger
	Tokens *authHelper.TokenService
	Hasher authHelper.Hasher

	Users       userRepo.UserRepository
	Links       linkRepo.UniqueAccessLinkRepository
	UserService *userService.UserService

	RequireAuth  fiber.Handler
	LoginLimiter fiber.Handler // nil = tanpa limiter
}
