// file: internals/route/index.go
package routes

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"personavix_backend/internals/configs"
	userRepo "personavix_backend/internals/features/users/user/repository"
	userService "personavix_backend/internals/features/users/user/service"
	linkRepo "personavix_backend/internals/features/unique_access_links/repository"
	authHelper "personavix_backend/internals/helpers/auth"
	"personavix_backend/internals/middlewares"
	authMiddleware "personavix_backend/internals/middlewares/auth"
	routeDetails "personavix_backend/internals/route/details"
)

var startTime time.Time

// Options carries the process-wide collaborators. Tokens and Hasher default
// to the configured JWT service and bcrypt.
type Options struct {
	Config *configs.Config
	Log    *slog.Logger
	Redis  *redis.Client
	Tokens *authHelper.TokenService
	Hasher authHelper.Hasher
}

func SetupRoutes(app *fiber.App, db *gorm.DB, opts Options) {
	startTime = time.Now()
	log := opts.Log

	tokens := opts.Tokens
	if tokens == nil {
		tokens = authHelper.NewTokenService(opts.Config.JWTSecret, opts.Config.AccessTokenTTL)
	}
	hasher := opts.Hasher
	if hasher == nil {
		hasher = authHelper.NewBcryptHasher()
	}

	// ===================== BASE =====================
	BaseRoutes(app, db, log)

	// ===================== RATE LIMIT =====================
	var loginLimiter fiber.Handler
	if opts.Config.RateLimitEnabled {
		var storage fiber.Storage
		if opts.Redis != nil {
			storage = middlewares.NewRedisStorage(opts.Redis, "personavix:limiter:")
		}
		app.Use(middlewares.GlobalRateLimiter(storage))
		loginLimiter = middlewares.LoginRateLimiter(storage)
	}

	// ===================== SHARED =====================
	users := userRepo.NewUserRepository(db)
	userSvc := userService.NewUserService(db, users, hasher)

	deps := routeDetails.Deps{
		DB:           db,
		Log:          log,
		Tokens:       tokens,
		Hasher:       hasher,
		Users:        users,
		Links:        linkRepo.NewUniqueAccessLinkRepository(db),
		UserService:  userSvc,
		RequireAuth:  authMiddleware.AuthMiddleware(tokens, userSvc, log),
		LoginLimiter: loginLimiter,
	}

	// ===================== MOUNT ROUTES =====================
	log.Info("mounting routes")
	routeDetails.AuthRoutes(app, deps)
	routeDetails.UserRoutes(app, deps)
	routeDetails.AnswerRoutes(app, deps)
	routeDetails.QuestionaryRoutes(app, deps)
	routeDetails.UniqueAccessLinkRoutes(app, deps)
}
