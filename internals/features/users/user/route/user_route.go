package route

import (
	"github.com/gofiber/fiber/v2"

	userController "personavix_backend/internals/features/users/user/controller"
	authMiddleware "personavix_backend/internals/middlewares/auth"
)

// UserRoutes mounts /users. requireAuth must run before any tier check.
func UserRoutes(r fiber.Router, ctrl *userController.UserController, requireAuth fiber.Handler) {
	g := r.Group("/users")

	g.Get("/", requireAuth, authMiddleware.OnlyAdmins(), ctrl.ListUsers)
	g.Post("/", requireAuth, authMiddleware.OnlyAdmins(), ctrl.CreateUser)
	g.Get("/:id", requireAuth, authMiddleware.OnlyUsers(authMiddleware.AllowLinkSession()), ctrl.GetUser)
	g.Patch("/:id", requireAuth, authMiddleware.OnlyUsers(authMiddleware.AllowLinkSession()), ctrl.UpdateUser)
}
