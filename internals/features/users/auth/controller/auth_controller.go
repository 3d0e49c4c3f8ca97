package controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/features/users/auth/service"
	userDTO "personavix_backend/internals/features/users/user/dto"
	helper "personavix_backend/internals/helpers"
	authHelper "personavix_backend/internals/helpers/auth"
)

type AuthController struct {
	svc *service.AuthService
	log *slog.Logger
}

func NewAuthController(svc *service.AuthService, log *slog.Logger) *AuthController {
	return &AuthController{svc: svc, log: log.With("controller", "auth")}
}

// POST /users/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.Fail(c, ac.log, "login rejected", err)
	}

	resp, err := ac.svc.Login(c.UserContext(), &req)
	if err != nil {
		return helper.Fail(c, ac.log, "login failed", err, "email", req.Email)
	}
	return helper.JsonOK(c, "Login successful", resp)
}

// POST /users/login/with-token
func (ac *AuthController) LoginWithToken(c *fiber.Ctx) error {
	auth, err := authHelper.GetAuthContext(c)
	if err != nil {
		return helper.Fail(c, ac.log, "token login failed", err)
	}

	resp, err := ac.svc.LoginWithToken(c.UserContext(), auth)
	if err != nil {
		return helper.Fail(c, ac.log, "token login failed", err, "id_usuario", auth.UserID)
	}
	return helper.JsonOK(c, "Login successful", resp)
}
