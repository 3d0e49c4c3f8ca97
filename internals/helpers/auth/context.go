package helper

import (
	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/constants"
	helper "personavix_backend/internals/helpers"
)

const LocAuthContext = "auth_context"

// AuthContext is resolved once per request by the auth middleware from the
// token and the live user row.
type AuthContext struct {
	UserID        uint
	Identity      string
	Permission    int
	AccessFlag    int
	IsLinkSession bool
}

func (a AuthContext) Require(tier constants.Tier) error {
	return Check(tier, a.Permission, a.AccessFlag)
}

// IsAdmin reports admin tier without producing an error.
func (a AuthContext) IsAdmin() bool {
	return a.Require(constants.TierAdmin) == nil
}

// CanActOn tells whether the caller may touch data owned by userID. Link
// sessions are confined to their own respondent.
func (a AuthContext) CanActOn(userID uint) bool {
	return !a.IsLinkSession || a.UserID == userID
}

func SetAuthContext(c *fiber.Ctx, ac AuthContext) {
	c.Locals(LocAuthContext, ac)
}

func GetAuthContext(c *fiber.Ctx) (AuthContext, error) {
	ac, ok := c.Locals(LocAuthContext).(AuthContext)
	if !ok {
		return AuthContext{}, helper.NewUnauthenticated(constants.MsgCouldNotValidate)
	}
	return ac, nil
}
