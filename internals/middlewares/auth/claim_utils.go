package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/constants"
	helper "personavix_backend/internals/helpers"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", helper.NewUnauthenticated("Not authenticated")
	}

	// toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", helper.NewUnauthenticated(constants.MsgTokenInvalid)
	}

	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", helper.NewUnauthenticated(constants.MsgTokenInvalid)
	}
	return tok, nil
}
