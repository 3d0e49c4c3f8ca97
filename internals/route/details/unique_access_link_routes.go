package details

import (
	"github.com/gofiber/fiber/v2"

	linkController "personavix_backend/internals/features/unique_access_links/controller"
	linkRoute "personavix_backend/internals/features/unique_access_links/route"
	linkService "personavix_backend/internals/features/unique_access_links/service"
)

func UniqueAccessLinkRoutes(r fiber.Router, d Deps) {
	svc := linkService.NewUniqueAccessLinkService(d.DB, d.Links, d.Users, d.Hasher, d.Tokens)
	ctrl := linkController.NewUniqueAccessLinkController(svc, d.Log)
	linkRoute.UniqueAccessLinkRoutes(r, ctrl, d.RequireAuth, d.LoginLimiter)
}
