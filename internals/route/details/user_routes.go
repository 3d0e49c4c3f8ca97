package details

import (
	"github.com/gofiber/fiber/v2"

	userController "personavix_backend/internals/features/users/user/controller"
	userRoute "personavix_backend/internals/features/users/user/route"
)

func UserRoutes(r fiber.Router, d Deps) {
	ctrl := userController.NewUserController(d.UserService, d.Log)
	userRoute.UserRoutes(r, ctrl, d.RequireAuth)
}
