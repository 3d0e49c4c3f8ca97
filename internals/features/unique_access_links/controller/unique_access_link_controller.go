package controller

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/features/unique_access_links/dto"
	"personavix_backend/internals/features/unique_access_links/service"
	helper "personavix_backend/internals/helpers"
)

type UniqueAccessLinkController struct {
	svc *service.UniqueAccessLinkService
	log *slog.Logger
}

func NewUniqueAccessLinkController(svc *service.UniqueAccessLinkService, log *slog.Logger) *UniqueAccessLinkController {
	return &UniqueAccessLinkController{svc: svc, log: log.With("controller", "unique_access_links")}
}

// GET /unique-access-links (admin)
func (lc *UniqueAccessLinkController) ListLinks(c *fiber.Ctx) error {
	paging, paged := helper.ResolvePaging(c, 20, 200)
	var pp *helper.Paging
	if paged {
		pp = &paging
	}

	links, total, err := lc.svc.List(c.UserContext(), pp)
	if err != nil {
		return helper.Fail(c, lc.log, "list unique access links failed", err)
	}

	var pagination *helper.Pagination
	if paged {
		p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(links))
		pagination = &p
	}
	return helper.JsonList(c, "Unique access links fetched successfully", links, pagination)
}

// GET /unique-access-links/:link (public)
func (lc *UniqueAccessLinkController) GetByLink(c *fiber.Ctx) error {
	link := strings.TrimSpace(c.Params("link"))
	if link == "" {
		return helper.Fail(c, lc.log, "get unique access link rejected", helper.NewInvalid("link is required"))
	}

	l, err := lc.svc.GetByLink(c.UserContext(), link)
	if err != nil {
		return helper.Fail(c, lc.log, "get unique access link failed", err, "link", link)
	}
	return helper.JsonOK(c, "Unique access link fetched successfully", l)
}

// POST /unique-access-links (admin)
func (lc *UniqueAccessLinkController) CreateLink(c *fiber.Ctx) error {
	var req dto.CreateUniqueAccessLinkRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.Fail(c, lc.log, "create unique access link rejected", err)
	}

	l, err := lc.svc.Create(c.UserContext(), &req)
	if err != nil {
		return helper.Fail(c, lc.log, "create unique access link failed", err, "user", req.User)
	}
	lc.log.Info("unique access link created", "id_sessao", l.ID, "id_usuario", l.UserID, "reqid", c.Locals("reqid"))
	return helper.JsonCreated(c, "Unique access link created successfully", l)
}

// POST /unique-access-links/login/:session_id (public)
func (lc *UniqueAccessLinkController) Login(c *fiber.Ctx) error {
	sessionID, err := strconv.ParseUint(c.Params("session_id"), 10, 64)
	if err != nil || sessionID == 0 {
		return helper.Fail(c, lc.log, "link login rejected", helper.NewInvalid("id_sessao must be a positive integer"))
	}

	var req dto.UniqueAccessLinkLoginRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.Fail(c, lc.log, "link login rejected", err, "id_sessao", sessionID)
	}

	resp, err := lc.svc.Login(c.UserContext(), uint(sessionID), &req)
	if err != nil {
		return helper.Fail(c, lc.log, "link login failed", err, "id_sessao", sessionID)
	}
	return helper.JsonOK(c, "Login successful", resp)
}
