package route

import (
	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/features/answers/controller"
	authMiddleware "personavix_backend/internals/middlewares/auth"
)

func AnswerRoutes(r fiber.Router, ctrl *controller.AnswerController, requireAuth fiber.Handler) {
	g := r.Group("/answers")

	g.Get("/", requireAuth, authMiddleware.OnlyManagers(), ctrl.ListAnswers)
	g.Get("/:id", requireAuth, authMiddleware.OnlyUsers(authMiddleware.AllowLinkSession()), ctrl.GetAnswer)
	g.Post("/:user_id", requireAuth, authMiddleware.OnlyUsers(authMiddleware.AllowLinkSession()), ctrl.CreateAnswer)
}
