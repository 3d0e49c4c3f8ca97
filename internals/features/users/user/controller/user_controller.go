package controller

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/features/users/user/dto"
	"personavix_backend/internals/features/users/user/service"
	helper "personavix_backend/internals/helpers"
	authHelper "personavix_backend/internals/helpers/auth"
)

type UserController struct {
	svc *service.UserService
	log *slog.Logger
}

func NewUserController(svc *service.UserService, log *slog.Logger) *UserController {
	return &UserController{svc: svc, log: log.With("controller", "users")}
}

// GET /users (admin)
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	paging, paged := helper.ResolvePaging(c, 20, 200)
	var pp *helper.Paging
	if paged {
		pp = &paging
	}

	users, total, err := uc.svc.List(c.UserContext(), pp)
	if err != nil {
		return helper.Fail(c, uc.log, "list users failed", err)
	}

	var pagination *helper.Pagination
	if paged {
		p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(users))
		pagination = &p
	}
	return helper.JsonList(c, "Users fetched successfully", users, pagination)
}

// GET /users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.Fail(c, uc.log, "get user failed", err)
	}
	ac, err := authHelper.GetAuthContext(c)
	if err != nil {
		return helper.Fail(c, uc.log, "get user failed", err)
	}

	u, err := uc.svc.Get(c.UserContext(), ac, id)
	if err != nil {
		return helper.Fail(c, uc.log, "get user failed", err, "id_usuario", id)
	}
	return helper.JsonOK(c, "User fetched successfully", u)
}

// POST /users (admin)
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.Fail(c, uc.log, "create user rejected", err)
	}

	u, err := uc.svc.Create(c.UserContext(), &req)
	if err != nil {
		return helper.Fail(c, uc.log, "create user failed", err, "email", req.Email)
	}
	uc.log.Info("user created", "id_usuario", u.ID, "reqid", c.Locals("reqid"))
	return helper.JsonCreated(c, "User created successfully", u)
}

// PATCH /users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.Fail(c, uc.log, "update user failed", err)
	}
	ac, err := authHelper.GetAuthContext(c)
	if err != nil {
		return helper.Fail(c, uc.log, "update user failed", err)
	}

	var req dto.UpdateUserRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.Fail(c, uc.log, "update user rejected", err, "id_usuario", id)
	}

	u, err := uc.svc.Update(c.UserContext(), ac, id, &req)
	if err != nil {
		return helper.Fail(c, uc.log, "update user failed", err, "id_usuario", id)
	}
	return helper.JsonUpdated(c, "User updated successfully", u)
}

func parseUserID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, helper.NewInvalid("id_usuario must be a positive integer")
	}
	return uint(id), nil
}
