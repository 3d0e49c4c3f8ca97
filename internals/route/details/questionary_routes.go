package details

import (
	"github.com/gofiber/fiber/v2"

	questionaryController "personavix_backend/internals/features/questionary/controller"
	questionaryRepo "personavix_backend/internals/features/questionary/repository"
	questionaryRoute "personavix_backend/internals/features/questionary/route"
)

func QuestionaryRoutes(r fiber.Router, d Deps) {
	ctrl := questionaryController.NewQuestionaryController(questionaryRepo.NewQuestionaryRepository(d.DB), d.Log)
	questionaryRoute.QuestionaryRoutes(r, ctrl, d.RequireAuth)
}
