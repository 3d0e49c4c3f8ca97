package details

import (
	"github.com/gofiber/fiber/v2"

	authController "personavix_backend/internals/features/users/auth/controller"
	authRoute "personavix_backend/internals/features/users/auth/route"
	authService "personavix_backend/internals/features/users/auth/service"
)

func AuthRoutes(r fiber.Router, d Deps) {
	svc := authService.NewAuthService(d.Users, d.Hasher, d.Tokens)
	ctrl := authController.NewAuthController(svc, d.Log)
	authRoute.AuthRoutes(r, ctrl, d.RequireAuth, d.LoginLimiter)
}
