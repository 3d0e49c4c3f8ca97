package route

import (
	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/features/questionary/controller"
	authMiddleware "personavix_backend/internals/middlewares/auth"
)

func QuestionaryRoutes(r fiber.Router, ctrl *controller.QuestionaryController, requireAuth fiber.Handler) {
	r.Get("/questionary", requireAuth, authMiddleware.OnlyUsers(authMiddleware.AllowLinkSession()), ctrl.GetQuestionary)
}
