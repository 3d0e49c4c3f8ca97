package route

import (
	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/features/users/auth/controller"
)

// AuthRoutes mounts the login endpoints. loginLimiter may be nil.
func AuthRoutes(r fiber.Router, ctrl *controller.AuthController, requireAuth, loginLimiter fiber.Handler) {
	g := r.Group("/users/login")

	if loginLimiter != nil {
		g.Post("/", loginLimiter, ctrl.Login)
	} else {
		g.Post("/", ctrl.Login)
	}
	g.Post("/with-token", requireAuth, ctrl.LoginWithToken)
}
