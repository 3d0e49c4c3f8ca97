package constants

import "fmt"

// Permission levels stored in usuarios.permissao
const (
	PermissionUser    = 1
	PermissionManager = 2
	PermissionAdmin   = 3
)

// Access flag stored in usuarios.flag_acesso
const (
	AccessDisabled = 0
	AccessEnabled  = 1
)

// Tier is an action tier checked by the authorization guard.
type Tier int

const (
	TierUser Tier = iota + 1
	TierManager
	TierAdmin
)

func (t Tier) String() string {
	switch t {
	case TierUser:
		return "user"
	case TierManager:
		return "manager"
	case TierAdmin:
		return "admin"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// MinPermission is the lowest permission level admitted by the tier.
func (t Tier) MinPermission() int {
	switch t {
	case TierManager:
		return PermissionManager
	case TierAdmin:
		return PermissionAdmin
	default:
		return PermissionUser
	}
}

// Guard and token messages
const (
	MsgNoAccess          = "Does not have access."
	MsgPermissionDenied  = "Permission is not allowed."
	MsgTokenExpired      = "Expired token."
	MsgTokenInvalid      = "Invalid token."
	MsgCouldNotValidate  = "Could not validate credentials."
	MsgErrorGettingUser  = "Error to get user."
	MsgInvalidCredential = "Invalid credentials"
	MsgUserNotAuthorized = "User not authorized"
)

// UserNotFoundByIdentity is returned while resolving a token to a live user.
func UserNotFoundByIdentity(identity string) string {
	return fmt.Sprintf("User %s not found.", identity)
}
