package helper

import (
	"personavix_backend/internals/constants"
	helper "personavix_backend/internals/helpers"
)

// Guard failures. A disabled account is rejected before any tier check.
var (
	ErrNoAccess         = helper.NewUnauthorized(constants.MsgNoAccess)
	ErrPermissionDenied = helper.NewForbidden(constants.MsgPermissionDenied)
)

// Check decides whether (permission, accessFlag) may act at tier.
func Check(tier constants.Tier, permission, accessFlag int) error {
	if accessFlag != constants.AccessEnabled {
		return ErrNoAccess
	}
	if permission < tier.MinPermission() || permission > constants.PermissionAdmin {
		return ErrPermissionDenied
	}
	return nil
}

func RequireUser(permission, accessFlag int) error {
	return Check(constants.TierUser, permission, accessFlag)
}

func RequireManager(permission, accessFlag int) error {
	return Check(constants.TierManager, permission, accessFlag)
}

func RequireAdmin(permission, accessFlag int) error {
	return Check(constants.TierAdmin, permission, accessFlag)
}
