package auth

import (
	"github.com/gofiber/fiber/v2"

	"personavix_backend/internals/constants"
	authHelper "personavix_backend/internals/helpers/auth"
)

type TierOption func(*tierConfig)

type tierConfig struct {
	allowLinkSession bool
}

// AllowLinkSession lets link-session tokens through without the tier check.
// Only for self-service routes; handlers still confine them to their own user.
func AllowLinkSession() TierOption {
	return func(cfg *tierConfig) { cfg.allowLinkSession = true }
}

// RequireTier must run after AuthMiddleware.
func RequireTier(tier constants.Tier, opts ...TierOption) fiber.Handler {
	cfg := tierConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	return func(c *fiber.Ctx) error {
		ac, err := authHelper.GetAuthContext(c)
		if err != nil {
			return err
		}
		if cfg.allowLinkSession && ac.IsLinkSession {
			return c.Next()
		}
		if err := ac.Require(tier); err != nil {
			return err
		}
		return c.Next()
	}
}

func OnlyUsers(opts ...TierOption) fiber.Handler    { return RequireTier(constants.TierUser, opts...) }
func OnlyManagers(opts ...TierOption) fiber.Handler { return RequireTier(constants.TierManager, opts...) }
func OnlyAdmins() fiber.Handler                     { return RequireTier(constants.TierAdmin) }
