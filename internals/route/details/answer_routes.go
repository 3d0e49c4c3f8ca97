package details

import (
	"github.com/gofiber/fiber/v2"

	answerController "personavix_backend/internals/features/answers/controller"
	answerRepo "personavix_backend/internals/features/answers/repository"
	answerRoute "personavix_backend/internals/features/answers/route"
	answerService "personavix_backend/internals/features/answers/service"
)

func AnswerRoutes(r fiber.Router, d Deps) {
	svc := answerService.NewAnswerService(d.DB, answerRepo.NewAnswerRepository(d.DB), d.Links, d.Users)
	ctrl := answerController.NewAnswerController(svc, d.Log)
	answerRoute.AnswerRoutes(r, ctrl, d.RequireAuth)
}
