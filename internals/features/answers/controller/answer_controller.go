package controller

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/features/answers/dto"
	"personavix_backend/internals/features/answers/service"
	helper "personavix_backend/internals/helpers"
	authHelper "personavix_backend/internals/helpers/auth"
)

type AnswerController struct {
	svc *service.AnswerService
	log *slog.Logger
}

func NewAnswerController(svc *service.AnswerService, log *slog.Logger) *AnswerController {
	return &AnswerController{svc: svc, log: log.With("controller", "answers")}
}

// GET /answers (manager), optional ?id_usuario=
func (ac *AnswerController) ListAnswers(c *fiber.Ctx) error {
	var userID *uint
	if raw := c.Query("id_usuario"); raw != "" {
		id, err := parseID(raw, "id_usuario")
		if err != nil {
			return helper.Fail(c, ac.log, "list answers rejected", err)
		}
		userID = &id
	}

	paging, paged := helper.ResolvePaging(c, 20, 200)
	var pp *helper.Paging
	if paged {
		pp = &paging
	}

	answers, total, err := ac.svc.List(c.UserContext(), userID, pp)
	if err != nil {
		return helper.Fail(c, ac.log, "list answers failed", err)
	}

	var pagination *helper.Pagination
	if paged {
		p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(answers))
		pagination = &p
	}
	return helper.JsonList(c, "Answers fetched successfully", answers, pagination)
}

// GET /answers/:id
func (ac *AnswerController) GetAnswer(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id_resposta")
	if err != nil {
		return helper.Fail(c, ac.log, "get answer rejected", err)
	}
	auth, err := authHelper.GetAuthContext(c)
	if err != nil {
		return helper.Fail(c, ac.log, "get answer failed", err)
	}

	a, err := ac.svc.Get(c.UserContext(), auth, id)
	if err != nil {
		return helper.Fail(c, ac.log, "get answer failed", err, "id_resposta", id)
	}
	return helper.JsonOK(c, "Answer fetched successfully", a)
}

// POST /answers/:user_id
func (ac *AnswerController) CreateAnswer(c *fiber.Ctx) error {
	userID, err := parseID(c.Params("user_id"), "id_usuario")
	if err != nil {
		return helper.Fail(c, ac.log, "create answer rejected", err)
	}
	auth, err := authHelper.GetAuthContext(c)
	if err != nil {
		return helper.Fail(c, ac.log, "create answer failed", err)
	}

	var req dto.CreateAnswerRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.Fail(c, ac.log, "create answer rejected", err, "id_usuario", userID)
	}

	a, err := ac.svc.Create(c.UserContext(), auth, userID, &req)
	if err != nil {
		return helper.Fail(c, ac.log, "create answer failed", err, "id_usuario", userID, "id_sessao", req.SessionID)
	}
	ac.log.Info("answer registered", "id_resposta", a.ID, "id_usuario", userID, "reqid", c.Locals("reqid"))
	return helper.JsonCreated(c, "Answer registered successfully", a)
}

func parseID(raw, field string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, helper.NewInvalid(field + " must be a positive integer")
	}
	return uint(id), nil
}
