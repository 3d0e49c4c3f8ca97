package controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/features/questionary/model"
	"personavix_backend/internals/features/questionary/repository"
	helper "personavix_backend/internals/helpers"
)

const msgErrGetQuestions = "Error getting questions."

type QuestionaryController struct {
	repo repository.QuestionaryRepository
	log  *slog.Logger
}

func NewQuestionaryController(repo repository.QuestionaryRepository, log *slog.Logger) *QuestionaryController {
	return &QuestionaryController{repo: repo, log: log.With("controller", "questionary")}
}

type QuestionaryResponse struct {
	Questions           []model.QuestionModel           `json:"questions"`
	DiscCharacteristics []model.DiscCharacteristicModel `json:"disc_characteristics"`
}

// GET /questionary
func (qc *QuestionaryController) GetQuestionary(c *fiber.Ctx) error {
	ctx := c.UserContext()

	questions, err := qc.repo.ListQuestions(ctx)
	if err != nil {
		return helper.Fail(c, qc.log, "list questions failed", helper.NewInternal(msgErrGetQuestions, err))
	}
	characteristics, err := qc.repo.ListCharacteristics(ctx)
	if err != nil {
		return helper.Fail(c, qc.log, "list characteristics failed", helper.NewInternal(msgErrGetQuestions, err))
	}

	return helper.JsonOK(c, "Questionary fetched successfully", QuestionaryResponse{
		Questions:           questions,
		DiscCharacteristics: characteristics,
	})
}
