package route

import (
	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/features/unique_access_links/controller"
	authMiddleware "personavix_backend/internals/middlewares/auth"
)

// UniqueAccessLinkRoutes: list/create untuk admin, lookup & login publik.
func UniqueAccessLinkRoutes(r fiber.Router, ctrl *controller.UniqueAccessLinkController, requireAuth, loginLimiter fiber.Handler) {
	g := r.Group("/unique-access-links")

	g.Get("/", requireAuth, authMiddleware.OnlyAdmins(), ctrl.ListLinks)
	g.Post("/", requireAuth, authMiddleware.OnlyAdmins(), ctrl.CreateLink)

	if loginLimiter != nil {
		g.Post("/login/:session_id", loginLimiter, ctrl.Login)
	} else {
		g.Post("/login/:session_id", ctrl.Login)
	}
	g.Get("/:link", ctrl.GetByLink)
}
